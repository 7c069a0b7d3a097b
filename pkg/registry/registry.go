// Package registry stores component schemas keyed by component name. It owns
// the only shared mutable state in the system; the analyzer itself stays
// stateless so registration can run concurrently.
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/propspec/propspec/pkg/analyzer"
	"github.com/propspec/propspec/pkg/schema"
)

// DefaultCacheSize bounds the analysis memoization cache.
const DefaultCacheSize = 1024

// Registry is a concurrent-safe schema store. Analysis results are memoized
// by source hash so an unchanged component is never re-analyzed.
type Registry struct {
	analyzer *analyzer.Analyzer
	logger   *slog.Logger

	mu      sync.RWMutex
	schemas map[string]schema.Schema

	analyzed *lru.Cache[string, schema.Schema]
}

// New creates a Registry backed by the given analyzer.
func New(a *analyzer.Analyzer, cacheSize int, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, schema.Schema](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}
	return &Registry{
		analyzer: a,
		logger:   logger,
		schemas:  make(map[string]schema.Schema),
		analyzed: cache,
	}, nil
}

// Register analyzes component source text and stores the resulting schema.
// Registration never fails due to analysis problems: a degraded component is
// still registered with the fallback schema and a warning is recorded by the
// analyzer. The returned schema is a deep copy owned by the caller.
func (r *Registry) Register(name, sourceText string) schema.Schema {
	key := sourceKey(name, sourceText)
	sch, cached := r.analyzed.Get(key)
	if !cached {
		sch = r.analyzer.Analyze(analyzer.Input{Name: name, SourceText: sourceText})
		r.analyzed.Add(key, sch)
	} else {
		r.logger.Debug("analysis cache hit", "component", name)
	}

	r.mu.Lock()
	r.schemas[name] = sch
	r.mu.Unlock()

	return sch.Clone()
}

// RegisterFile analyzes a source file's contents and stores the schema under
// a name derived from the path. The file extension selects the parse
// grammar, so plain .ts sources with angle-bracket type assertions are not
// forced through the TSX grammar. Memoized by path and contents.
func (r *Registry) RegisterFile(path, sourceText string) schema.Schema {
	name := ComponentNameFromPath(path)
	key := sourceKey(path, sourceText)
	sch, cached := r.analyzed.Get(key)
	if !cached {
		sch = r.analyzer.Analyze(analyzer.Input{Name: name, SourceText: sourceText, Path: path})
		r.analyzed.Add(key, sch)
	} else {
		r.logger.Debug("analysis cache hit", "component", name)
	}

	r.mu.Lock()
	r.schemas[name] = sch
	r.mu.Unlock()

	return sch.Clone()
}

// RegisterRuntime analyzes a runtime component reference and stores the
// resulting schema. Runtime references are not memoized: their shape is not
// hashable in general.
func (r *Registry) RegisterRuntime(name string, ref any) schema.Schema {
	sch := r.analyzer.Analyze(analyzer.Input{Name: name, RuntimeRef: ref})

	r.mu.Lock()
	r.schemas[name] = sch
	r.mu.Unlock()

	return sch.Clone()
}

// Get returns a deep copy of the stored schema for a component.
func (r *Registry) Get(name string) (schema.Schema, bool) {
	r.mu.RLock()
	sch, ok := r.schemas[name]
	r.mu.RUnlock()
	if !ok {
		return schema.Schema{}, false
	}
	return sch.Clone(), true
}

// Export renders the stored schema for a component as indented JSON.
func (r *Registry) Export(name string) ([]byte, error) {
	r.mu.RLock()
	sch, ok := r.schemas[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("component %q is not registered", name)
	}
	return sch.MarshalIndent()
}

// List returns the registered component names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Remove deletes a component's schema. Returns false if it was not present.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[name]; !ok {
		return false
	}
	delete(r.schemas, name)
	return true
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

func sourceKey(name, sourceText string) string {
	sum := sha256.Sum256([]byte(name + "\x00" + sourceText))
	return hex.EncodeToString(sum[:])
}
