package xinput

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

type XInput struct {
	xu *xgbutil.XUtil
}

func NewXInput(xu *xgbutil.XUtil) *XInput {
	keybind.Initialize(xu)
	return &XInput{xu: xu}
}

//----------

func (xi *XInput) ReadMapTable() {
	keyMap, modMap := keybind.MapsGet(xi.xu)
	keybind.KeyMapSet(xi.xu, keyMap)
	keybind.ModMapSet(xi.xu, modMap)
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.KeyDown {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	return &event.KeyDown{Point: p, KeySym: ks, Mods: m, Rune: ru}
}
func (xi *XInput) KeyRelease(ev *xproto.KeyReleaseEvent) *event.KeyUp {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks, ru := xi.lookup(ev.Detail, ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	return &event.KeyUp{Point: p, KeySym: ks, Mods: m, Rune: ru}
}

func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.MouseDown {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	m := translateModifiersToEventKeyModifiers(ev.State)
	return &event.MouseDown{Point: p, Button: b, Mods: m}
}
func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.MouseUp {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	m := translateModifiersToEventKeyModifiers(ev.State)
	return &event.MouseUp{Point: p, Button: b, Mods: m}
}

//----------

func (xi *XInput) lookup(keycode xproto.Keycode, state uint16) (event.KeySym, rune) {
	// column 0: unshifted, column 1: shifted
	xks0 := keybind.KeysymGet(xi.xu, keycode, 0)
	xks := xks0
	if state&xproto.KeyButMaskShift > 0 {
		if xks1 := keybind.KeysymGet(xi.xu, keycode, 1); xks1 != 0 {
			xks = xks1
		}
	}
	return translateXKeysymToEventKeySym(xks0), keysymRune(xks)
}
