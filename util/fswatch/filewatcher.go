package fswatch

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Watches a single file through its directory, so that a file replaced by
// a rename (common with editors) keeps being watched.
type FileWatcher struct {
	w    *FsnWatcher
	name string
	done chan struct{}
}

// fn is called on create/modify/rename of the file; errFn on watcher errors.
// Both are called from the watcher goroutine.
func NewFileWatcher(name string, fn func(*Event), errFn func(error)) (*FileWatcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, errors.Wrap(err, "abs")
	}
	w, err := NewFsnWatcher(Create | Modify | Rename)
	if err != nil {
		return nil, errors.Wrap(err, "new watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "watch %v", filepath.Dir(abs))
	}
	fw := &FileWatcher{w: w, name: abs, done: make(chan struct{})}
	go fw.loop(fn, errFn)
	return fw, nil
}

func (fw *FileWatcher) Name() string {
	return fw.name
}

// Waits for the watcher goroutine to exit.
func (fw *FileWatcher) Close() error {
	err := fw.w.Close()
	<-fw.done
	return err
}

func (fw *FileWatcher) loop(fn func(*Event), errFn func(error)) {
	defer close(fw.done)
	for ev := range fw.w.Events() {
		switch t := ev.(type) {
		case error:
			errFn(t)
		case *Event:
			if t.JoinNames() == fw.name {
				fn(t)
			}
		}
	}
}
