package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

type scriptWindow struct {
	evs    []interface{}
	closed bool
}

func (w *scriptWindow) NextEvent() interface{} {
	if w.closed || len(w.evs) == 0 {
		return &event.WindowClose{}
	}
	ev := w.evs[0]
	w.evs = w.evs[1:]
	return ev
}
func (w *scriptWindow) Post(ev interface{})                  { w.evs = append(w.evs, ev) }
func (w *scriptWindow) SetWindowName(string)                 {}
func (w *scriptWindow) SetIcon(*imageutil.Icon) error        { return nil }
func (w *scriptWindow) NativeHandle() (native.Handle, error) { return &native.Win32{HWND: 1}, nil }
func (w *scriptWindow) Close() error {
	w.closed = true
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
