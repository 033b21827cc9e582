package attention

import (
	"errors"
	"testing"
	"time"

	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/logutil"
)

func TestWin32Translation(t *testing.T) {
	type pair struct {
		req  Request
		want win32Flash
	}
	pairs := []pair{
		{Request{Style: StyleAll}, win32Flash{Flags: 3 | 0xC}},
		{Request{Style: StyleTray}, win32Flash{Flags: 2 | 0xC}},
		{Request{Style: StyleAll, Count: 5}, win32Flash{Flags: 3, Count: 5}},
		{Request{Style: StyleTray, Count: 2}, win32Flash{Flags: 2, Count: 2}},
		{Request{Style: StyleContinuous}, win32Flash{Flags: 3 | 4}},
		{Request{Style: StyleStop}, win32Flash{Flags: 0}},
		{Request{Style: StyleAll, Count: 1, Timeout: 250 * time.Millisecond}, win32Flash{Flags: 3, Count: 1, Timeout: 250}},
	}
	for i, p := range pairs {
		got := p.req.win32()
		if got != p.want {
			t.Fatalf("%v: %+v, expected %+v", i, got, p.want)
		}
	}
}

func TestCountPassedThrough(t *testing.T) {
	for _, n := range []uint32{0, 1, 7, 1000} {
		var got []win32Flash
		s := newTestSignal(&got)
		req := NewRequest(StyleAll, n, 0)
		if err := s.Flash(&fakeProvider{h: &native.Win32{HWND: 1}}, req); err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Fatalf("native calls: %v", len(got))
		}
		if got[0].Count != n {
			t.Fatalf("count: %v, expected %v", got[0].Count, n)
		}
	}
}

func TestFlashClosedWindow(t *testing.T) {
	var got []win32Flash
	s := newTestSignal(&got)
	hp := &fakeProvider{err: native.ErrWindowClosed}
	err := s.Flash(hp, NewRequest(StyleAll, 0, 0))
	if !errors.Is(err, ErrInvalidHandle) {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatal("native call with closed window")
	}
}

func TestFlashUnsupported(t *testing.T) {
	var got []win32Flash
	s := newTestSignal(&got)

	err := s.Flash(&fakeProvider{err: native.ErrUnsupported}, NewRequest(StyleAll, 0, 0))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatal(err)
	}
	// provider without a known handle kind
	err = s.Flash(&fakeProvider{}, NewRequest(StyleAll, 0, 0))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatal(err)
	}
}

func TestFlashNativeErrorNotRetried(t *testing.T) {
	calls := 0
	s := NewSignal(logutil.Discard())
	s.win32 = func(hwnd uintptr, f win32Flash) error {
		calls++
		return ErrInvalidHandle
	}
	err := s.Flash(&fakeProvider{h: &native.Win32{HWND: 2}}, NewRequest(StyleTray, 0, 0))
	if !errors.Is(err, ErrInvalidHandle) || calls != 1 {
		t.Fatalf("err=%v, calls=%v", err, calls)
	}
}

func TestFlashX11Dispatch(t *testing.T) {
	s := NewSignal(logutil.Discard())
	var got []*Request
	s.x11 = func(h *native.X11, req *Request) error {
		got = append(got, req)
		return nil
	}
	req := NewRequest(StyleContinuous, 0, 0)
	if err := s.Flash(&fakeProvider{h: &native.X11{Window: 5}}, req); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != req {
		t.Fatal(got)
	}
}

func TestParseStyle(t *testing.T) {
	for _, st := range []Style{StyleAll, StyleTray, StyleContinuous, StyleStop} {
		u, err := ParseStyle(st.String())
		if err != nil || u != st {
			t.Fatalf("%v: %v, %v", st, u, err)
		}
	}
	if _, err := ParseStyle("blink"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewRequestIDs(t *testing.T) {
	a := NewRequest(StyleAll, 0, 0)
	b := NewRequest(StyleAll, 0, 0)
	if a.ID == b.ID {
		t.Fatal("expected distinct ids")
	}
}

//----------

func newTestSignal(got *[]win32Flash) *Signal {
	s := NewSignal(logutil.Discard())
	s.win32 = func(hwnd uintptr, f win32Flash) error {
		*got = append(*got, f)
		return nil
	}
	return s
}

type fakeProvider struct {
	h   native.Handle
	err error
}

func (p *fakeProvider) NativeHandle() (native.Handle, error) {
	return p.h, p.err
}
