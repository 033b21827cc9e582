package app

import (
	"fmt"
	"image"

	"github.com/jmigpin/flashwin/config"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

// Decides if an event should request attention.
type Trigger interface {
	Fires(ev interface{}) bool
}

func NewTrigger(cfg *config.Configuration) (Trigger, error) {
	switch cfg.Trigger {
	case config.TriggerClick:
		return &ClickRect{Rect: cfg.TriggerRect()}, nil
	case config.TriggerKey:
		ks, err := event.ParseKeySym(cfg.TriggerKey)
		if err != nil {
			return nil, err
		}
		return &KeyPress{KeySym: ks}, nil
	case config.TriggerResume:
		return &OnResume{}, nil
	}
	return nil, fmt.Errorf("unknown trigger: %q", cfg.Trigger)
}

//----------

// Left button press inside the rectangle.
type ClickRect struct {
	Rect image.Rectangle
}

func (t *ClickRect) Fires(ev interface{}) bool {
	md, ok := ev.(*event.MouseDown)
	return ok && md.Button == event.ButtonLeft && md.Point.In(t.Rect)
}

func (t *ClickRect) String() string {
	return fmt.Sprintf("click in %v", t.Rect)
}

//----------

// Key press, releases are ignored.
type KeyPress struct {
	KeySym event.KeySym
}

func (t *KeyPress) Fires(ev interface{}) bool {
	kd, ok := ev.(*event.KeyDown)
	return ok && kd.KeySym == t.KeySym
}

func (t *KeyPress) String() string {
	return fmt.Sprintf("key %v", t.KeySym)
}

//----------

type OnResume struct{}

func (t *OnResume) Fires(ev interface{}) bool {
	_, ok := ev.(*event.Resumed)
	return ok
}

func (t *OnResume) String() string {
	return "resume"
}
