package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

func TestTranslateXKeysym(t *testing.T) {
	type pair struct {
		xk  xproto.Keysym
		eks event.KeySym
		ru  rune
	}
	pairs := []pair{
		{0x20, event.KSymSpace, ' '},
		{0x32, event.KSym2, '2'},
		{0x61, event.KSymA, 'a'},
		{0x41, event.KSymA, 'A'},
		{0xff0d, event.KSymReturn, 0},
		{0xffbe, event.KSymF1, 0},
		{0xffc9, event.KSymF12, 0},
		{0xfe50, event.KSymNone, 0}, // dead grave
	}
	for _, p := range pairs {
		eks := translateXKeysymToEventKeySym(p.xk)
		ru := keysymRune(p.xk)
		if eks != p.eks || ru != p.ru {
			t.Fatalf("%#x: got %v %q, expected %v %q", p.xk, eks, ru, p.eks, p.ru)
		}
	}
}

func TestTranslateModifiers(t *testing.T) {
	m := translateModifiersToEventKeyModifiers(xproto.KeyButMaskShift | xproto.KeyButMaskControl)
	if !m.Is(event.ModShift | event.ModCtrl) {
		t.Fatal(m)
	}
}

func TestTranslateButton(t *testing.T) {
	if b := translateButtonToEventButton(1); b != event.ButtonLeft {
		t.Fatal(b)
	}
	if b := translateButtonToEventButton(3); b != event.ButtonRight {
		t.Fatal(b)
	}
	if b := translateButtonToEventButton(42); b != event.ButtonNone {
		t.Fatal(b)
	}
}
