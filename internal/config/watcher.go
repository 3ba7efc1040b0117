package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// ReloadedMsg carries the result of reloading the config after a change.
type ReloadedMsg struct {
	Config *Config
	Err    error
}

// Watcher reloads the config whenever one of its files changes. Directories
// are watched rather than files so editors that save by rename are seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	targets  map[string]bool
	debounce time.Duration
	log      *zap.Logger

	out      chan ReloadedMsg
	stop     chan struct{}
	done     chan struct{}
	start    sync.Once
	stopOnce sync.Once
}

// NewWatcher watches the explicit path, or every search path when path is
// empty. Directories that do not exist are skipped.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	files := SearchPaths()
	if path != "" {
		files = []string{expandPath(path)}
	}

	w := &Watcher{
		fs:       fsw,
		path:     path,
		targets:  make(map[string]bool),
		debounce: DefaultDebounce,
		log:      log,
		out:      make(chan ReloadedMsg),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			log.Debug("config dir not watched", zap.String("dir", dir), zap.Error(err))
		}
	}
	return w, nil
}

// SetDebounce changes the settle delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start runs the event loop in a goroutine. Later calls do nothing.
func (w *Watcher) Start() {
	w.start.Do(func() { go w.run() })
}

// Wait returns a command that blocks until the next reload.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.out:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher and releases its file handles.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		w.start.Do(func() { close(w.done) })
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.stop:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("config changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload failed", zap.Error(err))
			}
			select {
			case w.out <- ReloadedMsg{Config: cfg, Err: err}:
			case <-w.stop:
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.targets[abs]
}
