package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Icon is a decoded window icon. Pix holds non-premultiplied RGBA, row major,
// with len(Pix) == Width*Height*4.
type Icon struct {
	Pix    []byte
	Width  int
	Height int
}

func NewIconFromImage(img image.Image) *Icon {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	u, ok := img.(*image.NRGBA)
	if !ok || u.Stride != 4*r.Dx() || b.Min != (image.Point{}) {
		u = image.NewNRGBA(r)
		draw.Draw(u, r, img, b.Min, draw.Src)
	}
	return &Icon{Pix: u.Pix, Width: r.Dx(), Height: r.Dy()}
}

func (ic *Icon) NRGBA() *image.NRGBA {
	r := image.Rect(0, 0, ic.Width, ic.Height)
	return &image.NRGBA{Pix: ic.Pix, Stride: 4 * ic.Width, Rect: r}
}

// Scaled returns a size×size copy. Returns the icon itself if it already has that size.
func (ic *Icon) Scaled(size int) *Icon {
	if ic.Width == size && ic.Height == size {
		return ic
	}
	r := image.Rect(0, 0, size, size)
	dst := image.NewNRGBA(r)
	xdraw.CatmullRom.Scale(dst, r, ic.NRGBA(), ic.NRGBA().Bounds(), xdraw.Src, nil)
	return &Icon{Pix: dst.Pix, Width: size, Height: size}
}

//----------

// Decodes png, jpeg, gif, bmp, tiff and webp.
func DecodeIcon(b []byte) (*Icon, error) {
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	r := img.Bounds()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return nil, &DecodeError{Err: fmt.Errorf("%v: empty image", format)}
	}
	return NewIconFromImage(img), nil
}

func LoadIcon(filename string) (*Icon, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, &IoError{Path: filename, Err: err}
	}
	ic, err := DecodeIcon(b)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = filename
		}
		return nil, err
	}
	return ic, nil
}

//----------

type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("icon decode: %v: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("icon decode: %v", e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }

type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("icon read: %v", e.Err)
}
func (e *IoError) Unwrap() error { return e.Err }
