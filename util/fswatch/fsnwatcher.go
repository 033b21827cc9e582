package fswatch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Emits *Event or error values. The events channel is closed after Close.
type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan interface{}
	opMask Op

	closeOnce sync.Once
	done      chan struct{}
}

func NewFsnWatcher(opMask Op) (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan interface{}),
		opMask: opMask,
		done:   make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FsnWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}

//----------

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}

func (w *FsnWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if !w.send(err) {
				return
			}
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev2 := w.translate(ev); ev2 != nil {
				if !w.send(ev2) {
					return
				}
			}
		}
	}
}

func (w *FsnWatcher) send(ev interface{}) bool {
	select {
	case w.events <- ev:
		return true
	case <-w.done:
		return false
	}
}

// Returns nil if the event is filtered by the op mask.
func (w *FsnWatcher) translate(ev fsnotify.Event) *Event {
	name := ev.Name
	subName := ""

	var op Op
	if ev.Has(fsnotify.Create) {
		op.Add(Create)
		// make event name dir, with subname file
		n, sn := filepath.Split(name)
		name, subName = filepath.Clean(n), sn
	}
	if ev.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if ev.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if ev.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if ev.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}

	if op&w.opMask == 0 {
		return nil
	}
	return &Event{Op: op, Name: name, SubName: subName}
}
