package toml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 50 * time.Millisecond

var ErrWatcherStarted = errors.New("settings watcher already started")

// Watcher reports edits to the settings file. It watches the parent
// directory because atomic saves replace the file instead of writing to it.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	done     chan struct{}
	started  atomic.Bool
}

func NewWatcher(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start begins watching and returns once the watch is registered. onChange
// runs on the watcher goroutine, once per burst of events, until ctx ends.
// A watcher can only be started once.
func (w *Watcher) Start(ctx context.Context, onChange func(context.Context)) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrWatcherStarted
	}

	watcher, err := w.watch()
	if err != nil {
		w.started.Store(false)
		return err
	}

	go w.loop(ctx, watcher, onChange)

	return nil
}

func (w *Watcher) watch() (*fsnotify.Watcher, error) {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, settingsDirMode); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch settings directory: %w", err)
	}

	return watcher, nil
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher, onChange func(context.Context)) {
	defer close(w.done)
	defer func() { _ = watcher.Close() }()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce = time.After(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", "path", w.path, "error", err)
		case <-debounce:
			debounce = nil
			w.logger.Debug("settings file changed", "path", w.path)
			onChange(ctx)
		}
	}
}
