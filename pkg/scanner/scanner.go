package scanner

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/propspec/propspec/pkg/registry"
	"github.com/propspec/propspec/pkg/util"
)

// Scan discovers component source files under rootDir and registers each one
// with the registry. Files are processed by a pool of worker goroutines; the
// registry's never-throws analysis contract means a broken file degrades to
// a fallback schema instead of failing the scan.
func Scan(ctx context.Context, rootDir string, cfg ScanConfig, reg *registry.Registry, logger *slog.Logger) (ScanStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	files, err := DiscoverFiles(rootDir, cfg)
	if err != nil {
		return ScanStats{}, err
	}

	cache := NewSourceCache(logger)
	defer cache.Close()

	var registered, failed, fallbacks atomic.Int64

	jobs := make(chan string)
	var wg sync.WaitGroup

	workers := util.PoolSizeWithOverride(cfg.Workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				source, err := cache.Get(path)
				if err != nil {
					logger.Warn("failed to read source file", "path", path, "error", err)
					failed.Add(1)
					continue
				}
				sch := reg.RegisterFile(path, string(source))
				if sch.IsFallback() {
					fallbacks.Add(1)
				}
				registered.Add(1)
			}
		}()
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			close(jobs)
			wg.Wait()
			return ScanStats{}, err
		}
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ScanStats{}, ctx.Err()
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	stats := ScanStats{
		FilesDiscovered: len(files),
		Registered:      int(registered.Load()),
		Failed:          int(failed.Load()),
		Fallbacks:       int(fallbacks.Load()),
		DurationMs:      time.Since(start).Milliseconds(),
	}

	logger.Info("scan complete",
		"root", rootDir,
		"discovered", stats.FilesDiscovered,
		"registered", stats.Registered,
		"failed", stats.Failed,
		"fallbacks", stats.Fallbacks,
		"duration_ms", stats.DurationMs)

	return stats, nil
}
