package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// SourceCache provides read access to source files via memory mapping, with
// a graceful fallback to os.ReadFile when mmap fails (empty files, exotic
// filesystems). Mapped regions stay open until Close.
//
// Thread-safe: reads take the read lock, first-time loads the write lock.
type SourceCache struct {
	mu       sync.RWMutex
	mapped   map[string]mmap.MMap
	fallback map[string][]byte
	logger   *slog.Logger
}

// NewSourceCache creates an empty SourceCache.
func NewSourceCache(logger *slog.Logger) *SourceCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceCache{
		mapped:   make(map[string]mmap.MMap),
		fallback: make(map[string][]byte),
		logger:   logger,
	}
}

// Get returns the file's contents, mapping it on first access. The returned
// slice is valid until Close; callers must not mutate it.
func (c *SourceCache) Get(path string) ([]byte, error) {
	c.mu.RLock()
	if m, ok := c.mapped[path]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	if b, ok := c.fallback[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if m, ok := c.mapped[path]; ok {
		return m, nil
	}
	if b, ok := c.fallback[path]; ok {
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		c.logger.Debug("mmap failed, falling back to ReadFile", "path", path, "error", err)
		b, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, rerr)
		}
		c.fallback[path] = b
		return b, nil
	}

	c.mapped[path] = m
	return m, nil
}

// Size returns the number of cached files.
func (c *SourceCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.mapped) + len(c.fallback)
}

// Close unmaps all files. Unmap errors are logged, not fatal.
func (c *SourceCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path, m := range c.mapped {
		if err := m.Unmap(); err != nil {
			c.logger.Warn("failed to unmap file", "path", path, "error", err)
		}
	}
	c.mapped = make(map[string]mmap.MMap)
	c.fallback = make(map[string][]byte)
}
