package roster

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gameshell/internal/logger"
)

// ReloadFunc is notified after every reload attempt.
type ReloadFunc func(count int, err error)

// Watch reloads m from path whenever the file is written or recreated, until
// ctx is cancelled. The parent directory is watched so that editors that
// replace the file atomically are still seen.
func Watch(ctx context.Context, path string, m *Memory, onReload ReloadFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create roster watcher: %w", err)
	}

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				entries, err := LoadFile(target)
				if err == nil {
					m.Replace(entries)
					logger.Debug("Roster reloaded", "file", target, "actors", len(entries))
				}
				if onReload != nil {
					onReload(len(entries), err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Roster watcher error", "error", err)
			}
		}
	}()

	return nil
}
