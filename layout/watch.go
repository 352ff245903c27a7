package layout

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce absorbs the burst of write events editors fire per save.
const reloadDebounce = 100 * time.Millisecond

// Watcher follows one named layout's on-disk copy and emits the reloaded
// spec whenever it changes. Saves that fail to load (mid-save truncation,
// bad yaml, unknown buttons) go to Errors and the previous spec stays in
// effect. Deleting the override emits the embedded default again.
type Watcher struct {
	name    string
	watcher *fsnotify.Watcher
	Specs   chan *CabinetSpec
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches layout/ for changes to the named layout. It fails
// when the directory does not exist on disk; callers running off the
// embedded layouts alone should treat that as "no live reload".
func NewWatcher(name string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(layoutDir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		name:    cleanLayoutPath(name),
		watcher: fw,
		Specs:   make(chan *CabinetSpec, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher; safe to call more than once. Specs and Errors
// close once the run loop winds down.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	// The run loop owns the outgoing channels, so a pending emit can
	// never race Close onto a closed channel.
	defer close(w.Errors)
	defer close(w.Specs)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if cleanLayoutPath(filepath.Base(event.Name)) != w.name {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now

			spec, err := LoadSpec(w.name)
			if err != nil {
				select {
				case w.Errors <- err:
				case <-w.closeCh:
					return
				}
				continue
			}
			select {
			case w.Specs <- spec:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
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
