package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/sjoeboo/canopy/internal/logging"
)

// ignoreWindow is the time window after NotifySave during which file changes
// are ignored. This prevents the watcher from triggering a reload when the
// demo itself saves the config.
const ignoreWindow = 500 * time.Millisecond

// debounceDelay batches rapid writes (editors often write several times per
// save) into one change check.
const debounceDelay = 100 * time.Millisecond

// reloadInterval caps how often reloads are delivered; a denied check is
// retried after retryDelay rather than dropped.
const (
	reloadInterval = 500 * time.Millisecond
	retryDelay     = 250 * time.Millisecond
)

// Watcher monitors a config file for external changes and signals reloads on
// a channel. The channel is closed when the watch loop exits, so consumers
// can range over it.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	limiter    *rate.Limiter
	reloadCh   chan struct{}
	closeCh    chan struct{}
	closeOnce  sync.Once

	// lastModified tracks file modification time for change detection
	lastModified time.Time
	modMu        sync.RWMutex

	// Tracks when the demo saved, to ignore self-triggered changes
	lastSaveTime time.Time
	saveMu       sync.RWMutex
}

// NewWatcher creates a watcher for the given config file.
func NewWatcher(configPath string) (*Watcher, error) {
	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Resolve the path once at initialization so event paths compare against
	// one canonical form (handles symlinked temp dirs, relative paths).
	resolvedPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
			resolvedPath = resolved
		} else {
			resolvedPath = absPath
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the parent directory (handles atomic renames)
	dir := filepath.Dir(resolvedPath)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	// Get initial mod time
	info, _ := os.Stat(resolvedPath)
	lastMod := time.Time{}
	if info != nil {
		lastMod = info.ModTime()
	}

	return &Watcher{
		watcher:      w,
		configPath:   resolvedPath,
		limiter:      rate.NewLimiter(rate.Every(reloadInterval), 1),
		lastModified: lastMod,
		reloadCh:     make(chan struct{}, 1), // buffered to prevent blocking
		closeCh:      make(chan struct{}),
	}, nil
}

// Start begins watching for file changes (non-blocking).
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop is the main event loop (runs in goroutine).
func (w *Watcher) watchLoop() {
	defer close(w.reloadCh)
	logger := logging.ForComponent(logging.CompWatcher)

	debounce := time.NewTimer(0)
	debounce.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about our specific file. Compare full resolved
			// paths: the parent directory is watched, so events for
			// sibling files arrive here too.
			eventPath := event.Name
			if absPath, err := filepath.Abs(event.Name); err == nil {
				if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
					eventPath = resolved
				} else {
					eventPath = absPath
				}
			}

			if eventPath != w.configPath {
				continue
			}

			// Ignore if deleted (probably a temp file)
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				continue
			}

			// Reset debounce timer (batches rapid writes)
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			// Debounce period elapsed; the limiter keeps a hot editor from
			// flooding the program with reloads.
			if !w.limiter.Allow() {
				debounce.Reset(retryDelay)
				continue
			}
			w.checkAndNotify(logger)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "path", w.configPath, "error", err)
		}
	}
}

// checkAndNotify checks the file modification time and notifies if changed.
func (w *Watcher) checkAndNotify(logger *slog.Logger) {
	// Check if we should ignore this change (the demo's own save)
	w.saveMu.RLock()
	lastSave := w.lastSaveTime
	w.saveMu.RUnlock()

	if time.Since(lastSave) < ignoreWindow {
		// Still update lastModified to avoid re-triggering later
		if info, err := os.Stat(w.configPath); err == nil {
			w.modMu.Lock()
			w.lastModified = info.ModTime()
			w.modMu.Unlock()
		}
		logger.Debug("ignoring own save", "path", w.configPath)
		return
	}

	info, err := os.Stat(w.configPath)
	if err != nil {
		// File might be temporarily gone during an atomic rename
		logger.Debug("stat failed", "path", w.configPath, "error", err)
		return
	}

	modTime := info.ModTime()
	w.modMu.Lock()
	if !modTime.After(w.lastModified) {
		w.modMu.Unlock()
		return
	}
	w.lastModified = modTime
	w.modMu.Unlock()

	logger.Debug("config changed", "path", w.configPath, "size", info.Size())

	// Non-blocking send (drop if a reload is already pending)
	select {
	case w.reloadCh <- struct{}{}:
	default:
	}
}

// Reloads returns the channel that signals when a reload is needed. The
// channel is closed once the watcher stops.
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloadCh
}

// NotifySave should be called right before the demo saves the config file,
// so the watcher can ignore the resulting change event.
func (w *Watcher) NotifySave() {
	w.saveMu.Lock()
	w.lastSaveTime = time.Now()
	w.saveMu.Unlock()
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.closeCh)
	})
	return w.watcher.Close()
}
