package assets

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/logger"
)

const watchBuffer = 16

// Watcher reports changed files under a directory. Its goroutine only
// posts file names; callers drain them from the frame loop.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

// Watch starts watching dir (not recursive).
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan string, watchBuffer),
		done:    make(chan struct{}),
	}
	go w.loop()

	logger.Debug("watching assets", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- filepath.Base(ev.Name):
			default:
				// A reload is already pending; it rereads everything.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("asset watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Pending drains the changed file names without blocking.
func (w *Watcher) Pending() []string {
	var names []string
	for {
		select {
		case name := <-w.changes:
			names = append(names, name)
		default:
			return names
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
