// Package attention asks the operating system to flash a window to draw the
// user's attention.
package attention

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/driver/xdriver"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/pkg/errors"
)

var (
	ErrInvalidHandle = errors.New("invalid window handle")
	ErrUnsupported   = errors.New("attention request not supported")
)

type Signal struct {
	log *logutil.Logger

	// native calls, replaced in tests
	win32 func(hwnd uintptr, f win32Flash) error
	x11   func(h *native.X11, req *Request) error
}

func NewSignal(log *logutil.Logger) *Signal {
	return &Signal{log: log, win32: flashWin32, x11: flashX11}
}

// Issues exactly one native attention request. Does not block waiting for
// the user and does not retry.
func (s *Signal) Flash(hp native.Provider, req *Request) error {
	h, err := hp.NativeHandle()
	if err != nil {
		switch {
		case errors.Is(err, native.ErrWindowClosed):
			return errors.WithMessage(ErrInvalidHandle, err.Error())
		case errors.Is(err, native.ErrUnsupported):
			return ErrUnsupported
		}
		return errors.Wrap(err, "native handle")
	}

	switch t := h.(type) {
	case *native.Win32:
		err = s.win32(t.HWND, req.win32())
	case *native.X11:
		err = s.x11(t, req)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return err
	}
	s.log.Debugf("flash: %v", req)
	return nil
}

//----------

// Count and timeout are not part of the X11 protocols: the window manager owns
// the cadence, and the state is cleared when the window gets focus.
func flashX11(h *native.X11, req *Request) error {
	var err error
	switch req.Style {
	case StyleStop:
		err = xdriver.ClearAttention(h.XU, h.Window)
	case StyleTray:
		err = xdriver.RequestAttention(h.XU, h.Window, false, true)
	default:
		err = xdriver.RequestAttention(h.XU, h.Window, true, true)
	}
	if err != nil {
		var werr xproto.WindowError
		if errors.As(err, &werr) {
			return errors.WithMessage(ErrInvalidHandle, err.Error())
		}
		return err
	}
	return nil
}
