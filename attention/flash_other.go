//go:build !windows

package attention

func flashWin32(hwnd uintptr, f win32Flash) error {
	return ErrUnsupported
}
