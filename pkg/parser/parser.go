// Package parser wraps pooled tree-sitter parsers for the TypeScript, TSX
// and JavaScript grammars. Trees returned by Parse are owned by the caller
// and must be closed via tree.Close().
package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/propspec/propspec/pkg/util"
)

// poolKey uniquely identifies a parser pool (language + TSX variant).
type poolKey struct {
	lang  Language
	isTSX bool
}

// Manager manages tree-sitter parsers for the supported grammars with lazy
// pool initialization and thread-safe concurrent access. Multiple goroutines
// can parse the same language simultaneously; pool creation uses
// double-checked locking.
type Manager struct {
	pools  map[poolKey]*grammarPool
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewManager creates a new Manager. The returned manager must be closed via
// Close() to free parser resources.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		pools:  make(map[poolKey]*grammarPool),
		logger: logger,
	}
}

// Parse parses source code using the specified language grammar. The isTSX
// parameter is only relevant for TypeScript, where it enables JSX support.
//
// Returns a Tree that MUST be closed by the caller via tree.Close().
// Trees with recoverable parse errors are still returned; partial trees are
// useful for best-effort extraction.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("cannot parse unknown language")
	}

	pool, err := m.getOrCreatePool(lang, isTSX)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool for %s: %w", lang, err)
	}

	parser, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire parser: %w", err)
	}

	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}

	if tree.RootNode().HasError() {
		m.logger.Debug("parse tree contains errors", "language", lang.String())
	}

	return tree, nil
}

// ParseFile parses a file's contents by detecting its grammar from the path.
func (m *Manager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	return m.Parse(source, lang, IsTSXFile(filePath))
}

// Close releases all parser pool resources. After Close the Manager cannot
// be used.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, pool := range m.pools {
		if pool != nil {
			pool.close()
			m.logger.Debug("closed parser pool",
				"language", key.lang.String(),
				"isTSX", key.isTSX)
		}
	}
	m.pools = make(map[poolKey]*grammarPool)
	return nil
}

func (m *Manager) getOrCreatePool(lang Language, isTSX bool) (*grammarPool, error) {
	key := poolKey{lang: lang, isTSX: isTSX}

	m.mu.RLock()
	pool, exists := m.pools[key]
	m.mu.RUnlock()
	if exists {
		return pool, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, exists = m.pools[key]; exists {
		return pool, nil
	}

	langPtr, err := languagePointer(lang, isTSX)
	if err != nil {
		return nil, err
	}

	pool = newGrammarPool(lang, langPtr, isTSX, util.PoolSize(), m.logger)
	m.pools[key] = pool
	return pool, nil
}

// languagePointer returns the tree-sitter grammar pointer for a language.
func languagePointer(lang Language, isTSX bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang.String())
	}
}
