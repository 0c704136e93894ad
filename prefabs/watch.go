package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports edited prefab and script files. Events carries file names
// only; callers decide when to reload.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run(newDebouncer(reloadDebounce))
	return w, nil
}

// Close stops the watcher. Events and Errors stay open so a late Drain is safe.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

// Drain returns the distinct pending file names, oldest first, without
// blocking.
func (w *Watcher) Drain() []string {
	if w == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for {
		select {
		case name := <-w.Events:
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		default:
			return out
		}
	}
}

func (w *Watcher) run(d *debouncer) {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !d.admit(ev, time.Now()) {
				continue
			}
			select {
			case w.Events <- ev.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// debouncer drops events that cannot change a prefab, and repeats of the
// same file inside window. Editors often write a file several times per save.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, last: map[string]time.Time{}}
}

func (d *debouncer) admit(ev fsnotify.Event, now time.Time) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if !isSpecFile(ev.Name) && !isScriptFile(ev.Name) {
		return false
	}
	if t, ok := d.last[ev.Name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[ev.Name] = now
	return true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
