package host

import (
	"errors"
	"image"
	"testing"

	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

func TestRunCloseStopsDispatch(t *testing.T) {
	win := newFakeWindow(
		&event.WindowResize{Rect: image.Rect(0, 0, 10, 10)},
		&event.WindowClose{},
		&event.KeyDown{KeySym: event.KSymSpace},
		&event.MouseDown{Button: event.ButtonLeft},
	)
	h := New(win, logutil.Discard())
	rh := &recHandler{}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	want := []string{"lifecycle", "window", "window"}
	if !equalStrs(rh.calls, want) {
		t.Fatalf("calls: %v, expected %v", rh.calls, want)
	}
	if _, ok := rh.evs[2].(*event.WindowClose); !ok {
		t.Fatalf("last event: %T", rh.evs[2])
	}
	if !win.closed {
		t.Fatal("window not closed")
	}
	if h.State() != StateClosed {
		t.Fatal(h.State())
	}
}

func TestRunDeliveryOrder(t *testing.T) {
	evs := []interface{}{
		&event.KeyDown{KeySym: event.KSymA},
		&event.MouseDown{Point: image.Pt(1, 2)},
		&event.KeyUp{KeySym: event.KSymA},
		&event.WindowResize{},
		&event.WindowClose{},
	}
	win := newFakeWindow(evs...)
	h := New(win, logutil.Discard())
	rh := &recHandler{}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	// first is the initial resumed
	got := rh.evs[1:]
	if len(got) != len(evs) {
		t.Fatalf("got %v events", len(got))
	}
	for i := range evs {
		if got[i] != evs[i] {
			t.Fatalf("event %v: %T, expected %T", i, got[i], evs[i])
		}
	}
}

func TestRunHandlerExit(t *testing.T) {
	win := newFakeWindow(
		&event.KeyDown{KeySym: event.KSymEscape},
		&event.KeyDown{KeySym: event.KSymA},
	)
	h := New(win, logutil.Discard())
	rh := &recHandler{exitOnKey: true}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	if n := len(rh.calls); n != 2 {
		t.Fatalf("calls: %v", rh.calls)
	}
	if !win.closed {
		t.Fatal("window not closed")
	}
}

func TestRunDropsUnknownEvents(t *testing.T) {
	win := newFakeWindow(
		&event.MouseUp{},
		&event.MouseMove{},
		&event.WindowExpose{},
		errors.New("some driver error"),
		&event.WindowClose{},
	)
	h := New(win, logutil.Discard())
	rh := &recHandler{}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	want := []string{"lifecycle", "window"}
	if !equalStrs(rh.calls, want) {
		t.Fatalf("calls: %v", rh.calls)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	win := newFakeWindow(
		&event.Resumed{}, // already resumed: ignored
		&event.Suspended{},
		&event.Suspended{}, // ignored
		&event.Resumed{},
		&event.WindowClose{},
	)
	h := New(win, logutil.Discard())
	rh := &recHandler{}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, ev := range rh.evs {
		switch ev.(type) {
		case *event.Resumed:
			got = append(got, "r")
		case *event.Suspended:
			got = append(got, "s")
		}
	}
	want := []string{"r", "s", "r"}
	if !equalStrs(got, want) {
		t.Fatalf("lifecycle: %v, expected %v", got, want)
	}
}

func TestNativeHandleAfterClose(t *testing.T) {
	win := newFakeWindow(&event.WindowClose{})
	h := New(win, logutil.Discard())
	if _, err := h.NativeHandle(); err != nil {
		t.Fatal(err)
	}

	// the handle is already invalid while the close event is handled
	var errInHandler error
	rh := &recHandler{onWindow: func(ev interface{}) {
		_, errInHandler = h.NativeHandle()
	}}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(errInHandler, native.ErrWindowClosed) {
		t.Fatalf("in handler: %v", errInHandler)
	}
	if _, err := h.NativeHandle(); !errors.Is(err, native.ErrWindowClosed) {
		t.Fatal(err)
	}
	if err := h.SetIcon(&imageutil.Icon{}); !errors.Is(err, native.ErrWindowClosed) {
		t.Fatal(err)
	}
}

func TestIconReloadNotForwarded(t *testing.T) {
	icon := &imageutil.Icon{Pix: make([]byte, 4), Width: 1, Height: 1}
	win := newFakeWindow(&IconReload{Icon: icon}, &event.WindowClose{})
	h := New(win, logutil.Discard())
	rh := &recHandler{}
	if err := h.Run(rh); err != nil {
		t.Fatal(err)
	}
	if win.icon != icon {
		t.Fatal("icon not set")
	}
	for _, ev := range rh.evs {
		if _, ok := ev.(*IconReload); ok {
			t.Fatal("icon reload forwarded")
		}
	}
}

func TestRunTwice(t *testing.T) {
	win := newFakeWindow(&event.WindowClose{})
	h := New(win, logutil.Discard())
	if err := h.Run(&recHandler{}); err != nil {
		t.Fatal(err)
	}
	if err := h.Run(&recHandler{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPlatformError(t *testing.T) {
	base := errors.New("no display")
	var err error = &PlatformError{Err: base}
	var pe *PlatformError
	if !errors.As(err, &pe) || !errors.Is(err, base) {
		t.Fatal(err)
	}
}

//----------

type recHandler struct {
	calls     []string
	evs       []interface{}
	exitOnKey bool
	onWindow  func(ev interface{})
}

func (rh *recHandler) rec(cat string, ev interface{}) {
	rh.calls = append(rh.calls, cat)
	rh.evs = append(rh.evs, ev)
}
func (rh *recHandler) OnWindow(ev interface{}) Control {
	rh.rec("window", ev)
	if rh.onWindow != nil {
		rh.onWindow(ev)
	}
	return Continue
}
func (rh *recHandler) OnKey(ev interface{}) Control {
	rh.rec("key", ev)
	if rh.exitOnKey {
		return Exit
	}
	return Continue
}
func (rh *recHandler) OnMouse(ev *event.MouseDown) Control {
	rh.rec("mouse", ev)
	return Continue
}
func (rh *recHandler) OnLifecycle(ev interface{}) Control {
	rh.rec("lifecycle", ev)
	return Continue
}

//----------

type fakeWindow struct {
	evs    []interface{}
	closed bool
	icon   *imageutil.Icon
	name   string
}

func newFakeWindow(evs ...interface{}) *fakeWindow {
	return &fakeWindow{evs: evs}
}

func (w *fakeWindow) NextEvent() interface{} {
	if w.closed || len(w.evs) == 0 {
		return &event.WindowClose{}
	}
	ev := w.evs[0]
	w.evs = w.evs[1:]
	return ev
}
func (w *fakeWindow) Post(ev interface{}) {
	w.evs = append(w.evs, ev)
}
func (w *fakeWindow) SetWindowName(s string) {
	w.name = s
}
func (w *fakeWindow) SetIcon(icon *imageutil.Icon) error {
	w.icon = icon
	return nil
}
func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}
func (w *fakeWindow) NativeHandle() (native.Handle, error) {
	if w.closed {
		return nil, native.ErrWindowClosed
	}
	return &native.Win32{HWND: 1}, nil
}

//----------

func equalStrs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCloseWithoutRun(t *testing.T) {
	win := newFakeWindow()
	h := New(win, logutil.Discard())
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if !win.closed || h.State() != StateClosed {
		t.Fatal("not closed")
	}
	if err := h.Run(&recHandler{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSetTitle(t *testing.T) {
	win := newFakeWindow()
	h := New(win, logutil.Discard())
	h.SetTitle("attention")
	if win.name != "attention" {
		t.Fatalf("name: %q", win.name)
	}
}
