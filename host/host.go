// Package host owns the native window and runs its event loop, dispatching
// events to a Handler one at a time, in delivery order.
package host

import (
	"fmt"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/flashwin/driver"
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
	"github.com/pkg/errors"
)

type Host struct {
	win   driver.Window
	log   *logutil.Logger
	state atomic.Int32
}

// Creates the native window. Failures are *PlatformError.
func Create(opts *driver.Options, log *logutil.Logger) (*Host, error) {
	win, err := driver.NewWindow(opts)
	if err != nil {
		return nil, &PlatformError{Err: errors.Wrap(err, "new window")}
	}
	log.Infof("window created: %q %vx%v", opts.Title, opts.Width, opts.Height)
	return New(win, log), nil
}

func New(win driver.Window, log *logutil.Logger) *Host {
	h := &Host{win: win, log: log}
	h.state.Store(int32(StateCreated))
	return h
}

//----------

func (h *Host) State() State {
	return State(h.state.Load())
}

func (h *Host) setState(s State) {
	h.state.Store(int32(s))
}

//----------

// Blocks until the window is closed or the handler returns Exit. The window
// is closed on return.
func (h *Host) Run(handler Handler) error {
	if s := h.State(); s != StateCreated {
		return fmt.Errorf("run: bad state: %v", s)
	}

	// desktop windows are resumed as soon as they exist
	ctl := h.handle(handler, &event.Resumed{})
	for ctl == Continue {
		ev := h.win.NextEvent()
		ctl = h.handle(handler, ev)
	}

	h.setState(StateClosed)
	return errors.Wrap(h.win.Close(), "close")
}

func (h *Host) handle(handler Handler, ev interface{}) Control {
	switch t := ev.(type) {
	case error:
		h.log.Errorf("driver: %v", t)
	case *IconReload:
		if err := h.SetIcon(t.Icon); err != nil {
			h.log.Warnf("icon reload: %v", err)
		} else {
			h.log.Infof("icon reloaded: %vx%v", t.Icon.Width, t.Icon.Height)
		}

	case *event.WindowClose:
		// the handle is invalid from here on, including inside the handler
		h.setState(StateClosed)
		handler.OnWindow(t)
		return Exit
	case *event.WindowResize:
		return handler.OnWindow(t)

	case *event.KeyDown:
		return handler.OnKey(t)
	case *event.KeyUp:
		return handler.OnKey(t)
	case *event.MouseDown:
		return handler.OnMouse(t)

	case *event.Resumed:
		if !h.transition(StateResumed) {
			return Continue
		}
		return handler.OnLifecycle(t)
	case *event.Suspended:
		if !h.transition(StateSuspended) {
			return Continue
		}
		return handler.OnLifecycle(t)

	default:
		// other events (mouse up/move, expose) are not part of the handler contract
		if h.log.Enabled(logutil.LevelDebug) {
			h.log.Debugf("drop event: %s", spew.Sdump(ev))
		}
	}
	return Continue
}

// Returns false if the transition is not allowed from the current state.
func (h *Host) transition(to State) bool {
	from := h.State()
	ok := false
	switch to {
	case StateResumed:
		ok = from == StateCreated || from == StateSuspended
	case StateSuspended:
		ok = from == StateResumed
	}
	if !ok {
		h.log.Warnf("ignoring lifecycle transition: %v -> %v", from, to)
		return false
	}
	h.setState(to)
	return true
}

// Closes the window without running the loop.
func (h *Host) Close() error {
	h.setState(StateClosed)
	return errors.Wrap(h.win.Close(), "close")
}

//----------

// Implements native.Provider.
func (h *Host) NativeHandle() (native.Handle, error) {
	if h.State() == StateClosed {
		return nil, native.ErrWindowClosed
	}
	return h.win.NativeHandle()
}

func (h *Host) SetIcon(icon *imageutil.Icon) error {
	if h.State() == StateClosed {
		return native.ErrWindowClosed
	}
	return errors.Wrap(h.win.SetIcon(icon), "set icon")
}

func (h *Host) SetTitle(s string) {
	h.win.SetWindowName(s)
}

// Enqueues an event after the pending ones. Safe to call from any goroutine.
func (h *Host) Post(ev interface{}) {
	h.win.Post(ev)
}

//----------

// Posted to replace the window icon from outside the loop goroutine. Applied
// by the loop, never forwarded to the handler.
type IconReload struct {
	Icon *imageutil.Icon
}

//----------

type PlatformError struct {
	Err error
}

func (e *PlatformError) Error() string {
	return "platform: " + e.Err.Error()
}
func (e *PlatformError) Unwrap() error {
	return e.Err
}
