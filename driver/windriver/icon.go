//go:build windows

package windriver

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jmigpin/flashwin/util/imageutil"
)

// Sets the taskbar (big) and caption (small) icons. Sizes follow the system metrics.
func (win *Window) ostSetIcon(icon *imageutil.Icon) error {
	bigSize := int(_GetSystemMetrics(_SM_CXICON))
	if bigSize <= 0 {
		bigSize = 32
	}
	smallSize := int(_GetSystemMetrics(_SM_CXSMICON))
	if smallSize <= 0 {
		smallSize = 16
	}

	big, err := createIcon(icon.Scaled(bigSize))
	if err != nil {
		return fmt.Errorf("big icon: %w", err)
	}
	small, err := createIcon(icon.Scaled(smallSize))
	if err != nil {
		_ = _DestroyIcon(big)
		return fmt.Errorf("small icon: %w", err)
	}

	_ = _SendMessageW(win.hwnd, uint32(_WM_SETICON), _ICON_BIG, uintptr(big))
	_ = _SendMessageW(win.hwnd, uint32(_WM_SETICON), _ICON_SMALL, uintptr(small))

	// previous icons are no longer referenced by the window
	win.ostDestroyIcons()
	win.icons.big, win.icons.small = big, small
	return nil
}

func (win *Window) ostDestroyIcons() {
	if win.icons.big != 0 {
		_ = _DestroyIcon(win.icons.big)
	}
	if win.icons.small != 0 {
		_ = _DestroyIcon(win.icons.small)
	}
	win.icons.big, win.icons.small = 0, 0
}

//----------

func createIcon(icon *imageutil.Icon) (windows.Handle, error) {
	size := image.Point{X: icon.Width, Y: icon.Height}
	colorH, bits, err := buildBitmap(size)
	if err != nil {
		return 0, fmt.Errorf("buildbitmap: %w", err)
	}
	defer _DeleteObject(colorH)

	// copy pixels into the dib section memory
	img := imageutil.NewBGRAFromIcon(icon)
	buf := unsafe.Slice(bits, len(img.Pix))
	copy(buf, img.Pix)

	// monochrome mask, rows word aligned; all zero since the alpha channel is used
	mask := make([]byte, ((size.X+15)/16)*2*size.Y)
	maskH, err := _CreateBitmap(int32(size.X), int32(size.Y), 1, 1, uintptr(unsafe.Pointer(&mask[0])))
	runtime.KeepAlive(mask)
	if err != nil {
		return 0, fmt.Errorf("createbitmap: %w", err)
	}
	defer _DeleteObject(maskH)

	ii := _IconInfo{FIcon: 1, HbmMask: maskH, HbmColor: colorH}
	iconH, err := _CreateIconIndirect(&ii)
	if err != nil {
		return 0, fmt.Errorf("createiconindirect: %w", err)
	}
	return iconH, nil
}

func buildBitmap(size image.Point) (bmH windows.Handle, bits *byte, _ error) {
	bmi := _BitmapInfo{
		BmiHeader: _BitmapInfoHeader{
			BiSize:        uint32(unsafe.Sizeof(_BitmapInfoHeader{})),
			BiWidth:       int32(size.X),
			BiHeight:      -int32(size.Y), // negative to invert y
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: _BI_RGB,
			BiSizeImage:   uint32(size.X * size.Y * 4),
		},
	}

	bmH, err := _CreateDIBSection(0, &bmi, _DIB_RGB_COLORS, &bits, 0, 0)
	if err != nil {
		return 0, nil, err
	}
	return bmH, bits, nil
}
