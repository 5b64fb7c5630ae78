package tile

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses editor save bursts (write + chmod + rename)
// into a single reload per file.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to tile catalog files so the editor can reload
// the registry while running. One path arrives on Events per save burst;
// both channels close after Close.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. The run goroutine owns Events and Errors and
// closes them on its way out, so a blocked send can never hit a closed
// channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if path, ok := w.filter(ev, seen); ok {
				select {
				case w.Events <- path:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// filter keeps content-changing events on catalog files, at most one per
// file per debounce window.
func (w *Watcher) filter(ev fsnotify.Event, seen map[string]time.Time) (string, bool) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return "", false
	}
	if !isCatalogFile(ev.Name) {
		return "", false
	}
	now := time.Now()
	if t, ok := seen[ev.Name]; ok && now.Sub(t) < debounceWindow {
		return "", false
	}
	seen[ev.Name] = now
	return ev.Name, true
}

func isCatalogFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
