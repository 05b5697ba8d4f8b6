package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iudanet/snipkeeper/internal/client/notify"
	"github.com/iudanet/snipkeeper/internal/client/sync"
)

const defaultDebounce = 500 * time.Millisecond

// runWatch держит каталог актуальным: синхронизирует после изменений
// в локальной папке и по таймеру для удалённых источников.
func (c *Cli) runWatch(ctx context.Context) error {
	debounce := c.watch.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsEvents, fsErrors, stopFS := c.watchFolder(c.watch.LocalFolder)
	defer stopFS()

	var catalogEvents <-chan notify.Event
	if c.events != nil {
		ch, cancel := c.events.Subscribe(ctx)
		defer cancel()
		catalogEvents = ch
	}

	var tick <-chan time.Time
	if c.watch.Interval > 0 {
		ticker := time.NewTicker(c.watch.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	pending := time.NewTimer(debounce)
	if !pending.Stop() {
		<-pending.C
	}
	defer pending.Stop()

	c.io.Printf("Watching %s (poll every %s). Press Ctrl+C to stop.\n", c.watch.LocalFolder, c.watch.Interval)
	if c.syncQuietly(ctx) {
		pending.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			c.io.Println("Watch stopped.")
			return nil

		case ev, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if ignoredPath(ev.Name) {
				continue
			}
			c.logger.Debug("local folder changed", "path", ev.Name, "op", ev.Op.String())
			pending.Reset(debounce)

		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			c.logger.Warn("file watcher error", "error", err)

		case <-pending.C:
			if c.syncQuietly(ctx) {
				pending.Reset(debounce)
			}

		case <-tick:
			if c.syncQuietly(ctx) {
				pending.Reset(debounce)
			}

		case ev, ok := <-catalogEvents:
			if !ok {
				catalogEvents = nil
				continue
			}
			c.printEvent(ev)
		}
	}
}

// syncQuietly выполняет проход и возвращает true, если его надо повторить позже
func (c *Cli) syncQuietly(ctx context.Context) bool {
	_, err := c.syncService.Sync(ctx)
	switch {
	case err == nil:
		return false
	case errors.Is(err, sync.ErrSyncInProgress):
		c.logger.Debug("sync already running, retrying later")
		return true
	case ctx.Err() != nil:
		return false
	default:
		c.io.Printf("✗ sync failed: %s\n", describeError(err))
		return false
	}
}

// watchFolder подписывается на папку и все её подпапки.
// Без папки остаётся только опрос по таймеру.
func (c *Cli) watchFolder(root string) (<-chan fsnotify.Event, <-chan error, func()) {
	if root == "" {
		return nil, nil, func() {}
	}
	if _, err := os.Stat(root); err != nil {
		c.logger.Warn("local folder is not available, falling back to polling", "path", root, "error", err)
		return nil, nil, func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.logger.Warn("failed to start file watcher", "error", err)
		return nil, nil, func() {}
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
	if err != nil {
		c.logger.Warn("failed to watch local folder", "path", root, "error", err)
	}

	events := make(chan fsnotify.Event)
	go func() {
		defer close(events)
		for ev := range watcher.Events {
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !ignoredPath(ev.Name) {
					if err := watcher.Add(ev.Name); err != nil {
						c.logger.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			events <- ev
		}
	}()

	return events, watcher.Errors, func() {
		_ = watcher.Close()
		for range events {
		}
	}
}

// ignoredPath отсекает скрытые и временные файлы, в том числе от атомарной записи
func ignoredPath(p string) bool {
	name := filepath.Base(p)
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".tmp")
}
