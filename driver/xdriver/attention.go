package xdriver

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/pkg/errors"
)

const demandsAttention = "_NET_WM_STATE_DEMANDS_ATTENTION"

// Sets the icccm urgency hint and/or asks the window manager to add the
// demands-attention state. Both are kept until the window gets focus.
func RequestAttention(xu *xgbutil.XUtil, win xproto.Window, urgency, demands bool) error {
	if urgency {
		if err := setUrgency(xu, win, true); err != nil {
			return err
		}
	}
	if demands {
		err := ewmh.WmStateReq(xu, win, ewmh.StateAdd, demandsAttention)
		if err != nil {
			return errors.Wrap(err, "wm state")
		}
	}
	return nil
}

func ClearAttention(xu *xgbutil.XUtil, win xproto.Window) error {
	if err := setUrgency(xu, win, false); err != nil {
		return err
	}
	err := ewmh.WmStateReq(xu, win, ewmh.StateRemove, demandsAttention)
	return errors.Wrap(err, "wm state")
}

func setUrgency(xu *xgbutil.XUtil, win xproto.Window, v bool) error {
	hints, err := icccm.WmHintsGet(xu, win)
	if err != nil {
		// no hints property yet
		hints = &icccm.Hints{}
	}
	has := hints.Flags&icccm.HintUrgency != 0
	if has == v {
		return nil
	}
	if v {
		hints.Flags |= icccm.HintUrgency
	} else {
		hints.Flags &^= icccm.HintUrgency
	}
	return errors.Wrap(icccm.WmHintsSet(xu, win, hints), "wm hints")
}
