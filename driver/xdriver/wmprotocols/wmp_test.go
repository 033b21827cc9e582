package wmprotocols

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestIsDeleteWindow(t *testing.T) {
	const protocols, deleteWindow, other = 10, 20, 30

	newEv := func(typ xproto.Atom, format byte, atom uint32) *xproto.ClientMessageEvent {
		return &xproto.ClientMessageEvent{
			Format: format,
			Type:   typ,
			Data:   xproto.ClientMessageDataUnionData32New([]uint32{atom, 0, 0, 0, 0}),
		}
	}

	if !IsDeleteWindow(newEv(protocols, 32, deleteWindow), protocols, deleteWindow) {
		t.Fatal("expected delete window")
	}
	if IsDeleteWindow(newEv(protocols, 32, other), protocols, deleteWindow) {
		t.Fatal("unexpected delete window")
	}
	if IsDeleteWindow(newEv(other, 32, deleteWindow), protocols, deleteWindow) {
		t.Fatal("wrong message type")
	}
	if IsDeleteWindow(newEv(protocols, 8, deleteWindow), protocols, deleteWindow) {
		t.Fatal("wrong format")
	}
}
