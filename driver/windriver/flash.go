//go:build windows

package windriver

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var ErrInvalidWindow = errors.New("invalid window handle")

// Single FlashWindowEx call. The return value of FlashWindowEx is the previous
// active state of the window, not an error indication.
func FlashWindow(hwnd uintptr, flags, count, timeout uint32) error {
	h := windows.Handle(hwnd)
	if h == 0 || !_IsWindow(h) {
		return ErrInvalidWindow
	}
	info := _FlashWInfo{
		HWnd:      h,
		DwFlags:   flags,
		UCount:    count,
		DwTimeout: timeout,
	}
	info.CbSize = uint32(unsafe.Sizeof(info))
	_ = _FlashWindowEx(&info)
	return nil
}
