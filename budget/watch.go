package budget

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchPollInterval is the polling cadence when fsnotify is unavailable.
const watchPollInterval = 500 * time.Millisecond

// WatchConfig watches a config file and sends each successfully reloaded
// config on the returned channel. Reloads that fail to parse or validate
// are skipped; the previous config stays in effect. The channel is closed
// when the context is cancelled.
//
// Uses fsnotify for efficient file watching with polling fallback.
func WatchConfig(ctx context.Context, path string) <-chan Config {
	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		// Try fsnotify first
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, path, ch)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly; editors often replace the file on save).
		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			watchPolling(ctx, path, ch)
			return
		}

		watchWithWatcher(ctx, path, ch, watcher)
	}()

	return ch
}

// watchWithWatcher uses fsnotify events to detect config changes.
func watchWithWatcher(ctx context.Context, path string, ch chan<- Config, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(ctx, path, ch)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
			_ = err
		}
	}
}

// watchPolling detects config changes by polling the file's mtime.
func watchPolling(ctx context.Context, path string, ch chan<- Config) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			reload(ctx, path, ch)
		}
	}
}

// reload loads the config and forwards it if it is valid.
func reload(ctx context.Context, path string, ch chan<- Config) {
	cfg, err := LoadConfig(path)
	if err != nil {
		// Invalid intermediate state (mid-write or bad edit); skip.
		return
	}
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
