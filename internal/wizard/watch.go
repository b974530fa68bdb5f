package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long a burst of file events must settle before the
// change callback runs.
const DebounceInterval = 100 * time.Millisecond

// Watcher reports changes to a single file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors that replace the file on save are still seen.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, watcher: w, logger: logger}, nil
}

// Run calls onChange after each settled burst of writes to the file until
// ctx is cancelled. onChange runs on the Run goroutine, never concurrently.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	defer func() { _ = w.watcher.Close() }()

	changed := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(DebounceInterval, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case <-changed:
			w.logger.Debug("project file changed", "file", w.path)
			onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// Close stops the watcher without running it.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch calls onChange whenever path is written, until ctx is cancelled.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(ctx context.Context)) error {
	w, err := NewWatcher(path, logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange)
}
