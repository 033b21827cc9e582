//go:build windows

package windriver

import (
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

func translateVKeyToEventKeySym(vkey uint32, ru rune) event.KeySym {
	ks := translateVKeyToEventKeySym2(vkey)
	if ks == event.KSymNone {
		ks = event.RuneToKeySym(ru)
	}
	return ks
}

// https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
func translateVKeyToEventKeySym2(vkey uint32) event.KeySym {
	switch {
	case vkey >= 0x30 && vkey <= 0x39:
		return event.KSym0 + event.KeySym(vkey-0x30)
	case vkey >= 0x41 && vkey <= 0x5A:
		return event.KSymA + event.KeySym(vkey-0x41)
	case vkey >= 0x70 && vkey <= 0x7B: // VK_F1..VK_F12
		return event.KSymF1 + event.KeySym(vkey-0x70)
	}
	switch vkey {
	case 0x20:
		return event.KSymSpace
	case 0x08: // VK_BACK
		return event.KSymBackspace
	case 0x09:
		return event.KSymTab
	case 0x0D:
		return event.KSymReturn
	case 0x1B:
		return event.KSymEscape
	case 0x2E:
		return event.KSymDelete
	case 0x2D:
		return event.KSymInsert
	case 0x24:
		return event.KSymHome
	case 0x23:
		return event.KSymEnd
	case 0x21: // VK_PRIOR
		return event.KSymPageUp
	case 0x22: // VK_NEXT
		return event.KSymPageDown
	case 0x25:
		return event.KSymLeft
	case 0x26:
		return event.KSymUp
	case 0x27:
		return event.KSymRight
	case 0x28:
		return event.KSymDown
	}
	return event.KSymNone
}

//----------

const (
	kstateToggleBit = 1
	kstateDownBit   = 1 << (8 - 1)
)

func translateKStateToEventKeyModifiers(kstate *[256]byte) event.KeyModifiers {
	type pair struct {
		a byte
		b event.KeyModifiers
	}
	pairs := []pair{
		{_VK_SHIFT, event.ModShift},
		{_VK_CONTROL, event.ModCtrl},
		{_VK_MENU, event.ModAlt},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if kstate[p.a]&kstateDownBit != 0 {
			w |= p.b
		}
	}
	if kstate[_VK_CAPITAL]&kstateToggleBit != 0 {
		w |= event.ModLock
	}
	return w
}

func translateVKeyToEventKeyModifiers(vkey uint32) event.KeyModifiers {
	type pair struct {
		a uint32
		b event.KeyModifiers
	}
	pairs := []pair{
		{_MK_SHIFT, event.ModShift},
		{_MK_CONTROL, event.ModCtrl},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if vkey&p.a > 0 {
			w |= p.b
		}
	}
	return w
}
