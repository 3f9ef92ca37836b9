// Package watch reloads level data when the level directory changes on disk.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor save bursts into one notification.
const DefaultDebounce = 200 * time.Millisecond

// Dir watches a level directory and its difficulty buckets.
//
// Start should only be called once; Stop is safe to call more than once.
type Dir struct {
	root     string
	debounce time.Duration
	onChange func()
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
	once  sync.Once
}

// NewDir creates a watcher that calls onChange after level files under root change.
func NewDir(root string, debounce time.Duration, logger *slog.Logger, onChange func()) (*Dir, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dir{root: root, debounce: debounce, onChange: onChange, watcher: w, logger: logger}, nil
}

// Start adds the directory tree and blocks until ctx is done. Run it in a goroutine.
func (d *Dir) Start(ctx context.Context) error {
	if err := d.addTree(); err != nil {
		return err
	}
	d.logger.Debug("watching level directory", "dir", d.root)

	for {
		select {
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return nil
			}
			d.handle(ev)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return nil
			}
			d.logger.Warn("level watcher error", "error", err)
		case <-ctx.Done():
			d.logger.Debug("level watcher stopping")
			return nil
		}
	}
}

func (d *Dir) addTree() error {
	if err := d.watcher.Add(d.root); err != nil {
		return err
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub := filepath.Join(d.root, e.Name())
		if err := d.watcher.Add(sub); err != nil {
			d.logger.Debug("cannot watch bucket", "path", sub, "error", err)
		}
	}
	return nil
}

func (d *Dir) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if ev.Op&fsnotify.Create != 0 {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = d.watcher.Add(ev.Name)
			return
		}
	}
	if !isLevelPath(ev.Name) {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.debounce, func() {
		d.logger.Info("level files changed", "path", ev.Name)
		d.onChange()
	})
}

// Stop releases the underlying watcher.
func (d *Dir) Stop() error {
	var err error
	d.once.Do(func() {
		d.mu.Lock()
		if d.timer != nil {
			d.timer.Stop()
		}
		d.mu.Unlock()
		err = d.watcher.Close()
	})
	return err
}

func isLevelPath(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
