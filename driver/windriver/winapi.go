//go:build windows

package windriver

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zwinapi.go winapi.go

import (
	"log"

	"golang.org/x/sys/windows"
)

//----------

const (
	_CW_USEDEFAULT = 0x80000000 - 0x100000000

	_CS_VREDRAW = 0x0001 // redraw on width adjust
	_CS_HREDRAW = 0x0002 // redraw on height adjust

	_IDC_ARROW = 32512

	_COLOR_WINDOW = 5

	_SW_SHOWDEFAULT = 10

	_BI_RGB         = 0
	_DIB_RGB_COLORS = 0

	// wm_seticon wparam
	_ICON_SMALL = 0
	_ICON_BIG   = 1

	// getsystemmetrics
	_SM_CXICON   = 11
	_SM_CXSMICON = 49
)

const (
	_MK_SHIFT   = 0x0004 // The SHIFT key is down.
	_MK_CONTROL = 0x0008 // The CTRL key is down.
)

const (
	_VK_SHIFT   = 0x10
	_VK_CONTROL = 0x11
	_VK_MENU    = 0x12 // alt
	_VK_CAPITAL = 0x14 // caps-lock
)

// https://docs.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-mapvirtualkeyw
const (
	_MAPVK_VK_TO_VSC = 0
)

const (
	_WS_OVERLAPPED       = 0x00000000
	_WS_MAXIMIZEBOX      = 0x00010000
	_WS_MINIMIZEBOX      = 0x00020000
	_WS_THICKFRAME       = 0x00040000
	_WS_SYSMENU          = 0x00080000
	_WS_CAPTION          = 0x00C00000
	_WS_OVERLAPPEDWINDOW = _WS_OVERLAPPED |
		_WS_CAPTION |
		_WS_SYSMENU |
		_WS_THICKFRAME |
		_WS_MINIMIZEBOX | _WS_MAXIMIZEBOX
)

type _wm uint32

const (
	_WM_CREATE      _wm = 0x01
	_WM_DESTROY     _wm = 0x02
	_WM_SIZE        _wm = 0x05
	_WM_CLOSE       _wm = 0x10
	_WM_SETICON     _wm = 0x80
	_WM_KEYDOWN     _wm = 0x100
	_WM_KEYUP       _wm = 0x101
	_WM_LBUTTONDOWN _wm = 0x201
	_WM_LBUTTONUP   _wm = 0x202
	_WM_RBUTTONDOWN _wm = 0x204
	_WM_RBUTTONUP   _wm = 0x205
	_WM_MBUTTONDOWN _wm = 0x207
	_WM_MBUTTONUP   _wm = 0x208
	_WM_APP         _wm = 0x8000
)

//----------

type _WndClassExW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type _Msg struct {
	HWnd     windows.Handle
	Msg      uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       _Point
	LPrivate uint32
}

type _CreateStructW struct {
	LpCreateParams uintptr
	HInstance      windows.Handle
	HMenu          windows.Handle
	HWnd           windows.Handle
	CY             int32 // h
	CX             int32 // w
	Y              int32
	X              int32
	Style          int32
	LpszName       *uint16
	LpszClass      *uint16
	DwExStyle      uint32
}

type _BitmapInfo struct {
	BmiHeader _BitmapInfoHeader
	BmColors  [1]_RgbQuad
}

type _BitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type _RgbQuad struct {
	Blue     byte
	Green    byte
	Red      byte
	Reserved byte
}

// https://docs.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-iconinfo
type _IconInfo struct {
	FIcon    int32 // BOOL: true for icons, false for cursors
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

// https://docs.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-flashwinfo
type _FlashWInfo struct {
	CbSize    uint32
	HWnd      windows.Handle
	DwFlags   uint32
	UCount    uint32
	DwTimeout uint32
}

//----------

type _Point struct {
	X, Y int32
}

//----------

func unpackLowHigh(v uint32) (int, int) {
	low := uint16(v)
	high := uint16(v >> 16)
	return int(low), int(high)
}

func UTF16PtrFromString(s string) *uint16 {
	ptr, err := windows.UTF16PtrFromString(s)
	if err != nil {
		log.Printf("error: windows UTF16PtrFromString: %v", err)
	}
	return ptr
}

//----------

// NOTES
// int -> int32
// uint -> uint32
// lpcwstr -> *uint16 // string of 16-bit unicode characters
// word -> uint16
// dword -> uint32
// long -> int32

//sys _GetModuleHandleW(name *uint16) (modH windows.Handle, err error) = kernel32.GetModuleHandleW

//sys _LoadCursorW(hInstance windows.Handle, name uint32) (cursorH windows.Handle, err error) = user32.LoadCursorW
//sys _RegisterClassExW(wcx *_WndClassExW) (atom uint16, err error) = user32.RegisterClassExW
//sys _CreateWindowExW(dwExStyle uint32, lpClassName *uint16, lpWindowName *uint16, dwStyle int32, x int32, y int32, nWidth int32, nHeight int32, hWndParent windows.Handle, hMenu windows.Handle, hInstance windows.Handle, lpParam uintptr) (wndH windows.Handle, err error) = user32.CreateWindowExW
//sys _PostMessageW(hwnd windows.Handle, msg uint32, wParam uintptr, lParam uintptr) (ok bool) = user32.PostMessageW
//sys _SendMessageW(hwnd windows.Handle, msg uint32, wParam uintptr, lParam uintptr) (res uintptr) = user32.SendMessageW
//sys _GetMessageW(msg *_Msg, hwnd windows.Handle, msgFilterMin uint32, msgFilterMax uint32) (res int32, err error) [failretval==-1] = user32.GetMessageW
//sys _DispatchMessageW(msg *_Msg) (res int32) = user32.DispatchMessageW
//sys _DefWindowProcW(hwnd windows.Handle, msg uint32, wparam uintptr, lparam uintptr) (ret uintptr) = user32.DefWindowProcW
//sys _DestroyWindow(hwnd windows.Handle) (ok bool) = user32.DestroyWindow
//sys _IsWindow(hwnd windows.Handle) (ok bool) = user32.IsWindow
//sys _PostQuitMessage(exitCode int32) = user32.PostQuitMessage
//sys _UpdateWindow(hwnd windows.Handle) (ok bool) = user32.UpdateWindow
//sys _ShowWindow(hwnd windows.Handle, nCmdShow int32) (ok bool) = user32.ShowWindow
//sys _MapVirtualKeyW(uCode uint32, uMapType uint32) (code uint32) = user32.MapVirtualKeyW
//sys _ToUnicode(wVirtKey uint32, wScanCode uint32, lpKeyState *[256]byte, pwszBuff *uint16, cchBuff int32, wFlags uint32) (code int32) = user32.ToUnicode
//sys _GetKeyboardState(state *[256]byte) (ok bool) = user32.GetKeyboardState
//sys _SetWindowTextW(hwnd windows.Handle, lpString *uint16) (ok bool) = user32.SetWindowTextW
//sys _GetSystemMetrics(nIndex int32) (res int32) = user32.GetSystemMetrics
//sys _CreateIconIndirect(info *_IconInfo) (iconH windows.Handle, err error) = user32.CreateIconIndirect
//sys _DestroyIcon(iconH windows.Handle) (ok bool) = user32.DestroyIcon
//sys _FlashWindowEx(info *_FlashWInfo) (wasActive bool) = user32.FlashWindowEx

//sys _CreateBitmap(w int32, h int32, planes uint32, bitCount uint32, bits uintptr) (bmH windows.Handle, err error) = gdi32.CreateBitmap
//sys _DeleteObject(obj windows.Handle) (ok bool) = gdi32.DeleteObject
//sys _CreateDIBSection(dc windows.Handle, bmi *_BitmapInfo, usage uint32, bits **byte, section windows.Handle, offset uint32) (bmH windows.Handle, err error) = gdi32.CreateDIBSection
