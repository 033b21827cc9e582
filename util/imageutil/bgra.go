package imageutil

import (
	"image"
	"image/color"
)

// BGRA is an RGBA image with the red and blue channels swapped in memory, the
// layout of a 32 bit Win32 DIB section.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r *image.Rectangle) *BGRA {
	u := image.NewRGBA(*r)
	return &BGRA{*u}
}

// Bgra copy of the icon with the alpha left unmultiplied, as expected by
// 32 bit icon bitmaps.
func NewBGRAFromIcon(ic *Icon) *BGRA {
	r := image.Rect(0, 0, ic.Width, ic.Height)
	img := NewBGRA(&r)
	for i := 0; i+3 < len(ic.Pix); i += 4 {
		p, q := ic.Pix[i:i+4], img.Pix[i:i+4]
		q[0], q[1], q[2], q[3] = p[2], p[1], p[0], p[3]
	}
	return img
}

func (img *BGRA) At(x, y int) color.Color {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R // flip to return Rgba
	return c
}

