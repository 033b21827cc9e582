package xdriver

import (
	"image"
	"os"
	"runtime"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/driver/xdriver/wmprotocols"
	"github.com/jmigpin/flashwin/driver/xdriver/xinput"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	XU     *xgbutil.XUtil
	Window xproto.Window
	Screen *xproto.ScreenInfo

	closeOnce sync.Once
	closed    chan struct{}

	XInput *xinput.XInput
	Wmp    *wmprotocols.WMP

	events chan interface{}
}

func NewWindow(title string, width, height int) (*Window, error) {
	display := os.Getenv("DISPLAY")
	if display == "" {
		switch runtime.GOOS {
		case "windows":
			display = "127.0.0.1:0.0"
		}
	}

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		if runtime.GOOS == "darwin" {
			err = errors.WithMessage(err, "macOS might need XQuartz installed")
		}
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		closed: make(chan struct{}),
		events: make(chan interface{}, 8),
	}

	if err := win.initialize(title, width, height); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}
func (win *Window) initialize(title string, width, height int) error {
	xu, err := xgbutil.NewConnXgb(win.Conn)
	if err != nil {
		return err
	}
	win.XU = xu

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// event mask
	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.WhitePixel, evMask}

	c := xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(width), uint16(height),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)
	if err := c.Check(); err != nil {
		return errors.Wrap(err, "create window")
	}

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	win.XInput = xinput.NewXInput(win.XU)

	wmClass := &icccm.WmClass{Instance: "flashwin", Class: "Flashwin"}
	if err := icccm.WmClassSet(win.XU, win.Window, wmClass); err != nil {
		return err
	}
	win.SetWindowName(title)

	_ = xproto.MapWindow(win.Conn, win.Window)
	return nil
}

//----------

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		close(win.closed)
		_ = xproto.DestroyWindow(win.Conn, win.Window)
		win.Conn.Close()
	})
	return nil
}

//----------

func (win *Window) NextEvent() interface{} {
	select {
	case ev := <-win.events:
		return ev
	case <-win.closed:
		return &event.WindowClose{}
	}
}

func (win *Window) Post(ev interface{}) {
	select {
	case win.events <- ev:
	case <-win.closed:
	}
}

//----------

func (win *Window) eventLoop() {
	for {
		if !win.handleEvent() {
			return
		}
	}
}

func (win *Window) handleEvent() bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		win.Post(&event.WindowClose{})
		return false
	}
	if xerr != nil {
		win.Post(error(xerr))
	}
	if ev != nil {
		if ev2 := win.translate(ev); ev2 != nil {
			win.Post(ev2)
		}
	}
	return true
}

// Returns nil for events that are handled internally.
func (win *Window) translate(ev xgb.Event) interface{} {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		w, h := int(t.Width), int(t.Height)
		return &event.WindowResize{Rect: image.Rect(0, 0, w, h)}
	case xproto.MappingNotifyEvent: // keyboard mapping
		win.XInput.ReadMapTable()
	case xproto.FocusInEvent:
		// the urgency hint is owned by the client, clear it once focused
		if err := ClearAttention(win.XU, win.Window); err != nil {
			return err
		}

	case xproto.KeyPressEvent:
		return win.XInput.KeyPress(&t)
	case xproto.KeyReleaseEvent:
		return win.XInput.KeyRelease(&t)
	case xproto.ButtonPressEvent:
		return win.XInput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		return win.XInput.ButtonRelease(&t)

	case xproto.ClientMessageEvent:
		if win.Wmp.OnClientMessageDeleteWindow(&t) {
			return &event.WindowClose{}
		}
	}
	return nil
}

//----------

func (win *Window) SetWindowName(str string) {
	_ = ewmh.WmNameSet(win.XU, win.Window, str)
	_ = icccm.WmNameSet(win.XU, win.Window, str)
}

func (win *Window) SetIcon(ic *imageutil.Icon) error {
	var icons []ewmh.WmIcon
	for _, size := range []int{16, 32, 48} {
		icons = append(icons, wmIcon(ic.Scaled(size)))
	}
	if ic.Width > 48 && ic.Width <= 256 && ic.Height <= 256 {
		icons = append(icons, wmIcon(ic))
	}
	return errors.Wrap(ewmh.WmIconSet(win.XU, win.Window, icons), "set icon")
}

// _NET_WM_ICON data is packed ARGB, one cardinal per pixel.
func wmIcon(ic *imageutil.Icon) ewmh.WmIcon {
	data := make([]uint, ic.Width*ic.Height)
	for i := range data {
		p := ic.Pix[i*4 : i*4+4]
		data[i] = uint(p[3])<<24 | uint(p[0])<<16 | uint(p[1])<<8 | uint(p[2])
	}
	return ewmh.WmIcon{Width: uint(ic.Width), Height: uint(ic.Height), Data: data}
}

//----------

func (win *Window) NativeHandle() (native.Handle, error) {
	select {
	case <-win.closed:
		return nil, native.ErrWindowClosed
	default:
		return &native.X11{XU: win.XU, Window: win.Window}, nil
	}
}
