package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

// https://cgit.freedesktop.org/xorg/proto/x11proto/tree/keysymdef.h

func translateXKeysymToEventKeySym(xk xproto.Keysym) event.KeySym {
	switch {
	case xk >= 0x30 && xk <= 0x39:
		return event.KSym0 + event.KeySym(xk-0x30)
	case xk >= 0x41 && xk <= 0x5a:
		return event.KSymA + event.KeySym(xk-0x41)
	case xk >= 0x61 && xk <= 0x7a:
		return event.KSymA + event.KeySym(xk-0x61)
	case xk >= 0xffbe && xk <= 0xffc9:
		return event.KSymF1 + event.KeySym(xk-0xffbe)
	}
	switch xk {
	case 0x20:
		return event.KSymSpace
	case 0xff08:
		return event.KSymBackspace
	case 0xff09:
		return event.KSymTab
	case 0xff0d, 0xff8d: // return, keypad enter
		return event.KSymReturn
	case 0xff1b:
		return event.KSymEscape
	case 0xffff:
		return event.KSymDelete
	case 0xff63:
		return event.KSymInsert
	case 0xff50:
		return event.KSymHome
	case 0xff57:
		return event.KSymEnd
	case 0xff55:
		return event.KSymPageUp
	case 0xff56:
		return event.KSymPageDown
	case 0xff51:
		return event.KSymLeft
	case 0xff52:
		return event.KSymUp
	case 0xff53:
		return event.KSymRight
	case 0xff54:
		return event.KSymDown
	}
	return event.KSymNone
}

// Latin-1 keysyms match their unicode code points.
func keysymRune(xk xproto.Keysym) rune {
	if (xk >= 0x20 && xk <= 0x7e) || (xk >= 0xa0 && xk <= 0xff) {
		return rune(xk)
	}
	return 0
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskMod1, event.Mod1},
		{xproto.KeyButMaskMod2, event.Mod2},
		{xproto.KeyButMaskMod3, event.Mod3},
		{xproto.KeyButMaskMod4, event.Mod4},
		{xproto.KeyButMaskMod5, event.Mod5},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	switch xb {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	case 8:
		return event.ButtonBackward
	case 9:
		return event.ButtonForward
	}
	return event.ButtonNone
}
