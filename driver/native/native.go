// Package native describes the operating system identity of a window.
package native

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/pkg/errors"
)

// One of *Win32 or *X11.
type Handle interface {
	isHandle()
}

type Win32 struct {
	HWND uintptr
}

type X11 struct {
	XU     *xgbutil.XUtil
	Window xproto.Window
}

func (*Win32) isHandle() {}
func (*X11) isHandle()   {}

//----------

// Implemented by windows able to expose their native handle.
type Provider interface {
	NativeHandle() (Handle, error)
}

var (
	ErrWindowClosed = errors.New("window closed")
	ErrUnsupported  = errors.New("no native window handle")
)
