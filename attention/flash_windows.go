package attention

import (
	"github.com/jmigpin/flashwin/driver/windriver"
	"github.com/pkg/errors"
)

func flashWin32(hwnd uintptr, f win32Flash) error {
	err := windriver.FlashWindow(hwnd, f.Flags, f.Count, f.Timeout)
	if errors.Is(err, windriver.ErrInvalidWindow) {
		return ErrInvalidHandle
	}
	return err
}
