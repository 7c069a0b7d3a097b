package registry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/fsnotify/fsnotify"

	"github.com/propspec/propspec/pkg/parser"
)

// WatchOptions configures the file watcher.
type WatchOptions struct {
	// DebounceMs groups rapid changes to the same file so editors writing in
	// bursts trigger one re-registration, not several.
	DebounceMs int
}

// DefaultWatchOptions returns the default watch configuration.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// Watcher watches component source files and keeps the registry current:
// changed files are re-analyzed and re-registered, deleted files are removed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	registry *Registry
	logger   *slog.Logger
	options  WatchOptions

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a file watcher bound to a registry.
func NewWatcher(reg *Registry, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = DefaultWatchOptions().DebounceMs
	}
	return &Watcher{
		watcher:        fw,
		registry:       reg,
		logger:         logger,
		options:        options,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start begins watching the given directories. Runs in a background
// goroutine until Stop is called.
func (w *Watcher) Start(dirs ...string) error {
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.loop()
	return nil
}

// Stop halts the watcher and releases its resources.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		_ = w.watcher.Close()
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if parser.DetectLanguage(event.Name) == parser.LanguageUnknown {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		name := ComponentNameFromPath(event.Name)
		if w.registry.Remove(name) {
			w.logger.Info("component removed", "component", name, "path", event.Name)
		}
	case event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create):
		w.debounce(event.Name)
	}
}

// debounce schedules a re-registration after the debounce window, resetting
// the timer on every new event for the same path.
func (w *Watcher) debounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounceTimers[path]; ok {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
			w.reregister(path)
		},
	)
}

func (w *Watcher) reregister(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("failed to read changed file", "path", path, "error", err)
		return
	}
	sch := w.registry.RegisterFile(path, string(source))
	w.logger.Info("component re-registered",
		"component", sch.Name,
		"path", path,
		"platform", sch.Platform,
		"props", len(sch.Props))
}

// ComponentNameFromPath derives a component name from a source file path:
// the file stem with its first rune upper-cased ("button.tsx" -> "Button").
func ComponentNameFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		return stem
	}
	runes := []rune(stem)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
