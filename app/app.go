// Package app is the event handler: it requests attention when the
// configured trigger fires.
package app

import (
	"github.com/jmigpin/flashwin/attention"
	"github.com/jmigpin/flashwin/config"
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/host"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
	"github.com/pkg/errors"
)

type Flasher interface {
	Flash(hp native.Provider, req *attention.Request) error
}

type App struct {
	hp      native.Provider
	fl      Flasher
	log     *logutil.Logger
	trigger Trigger

	style   attention.Style
	count   uint32
	cfg     *config.Configuration
	closed  bool
	flashes int
}

// The window is attached later with Attach, so that a bad configuration is
// reported before any window exists.
func New(cfg *config.Configuration, fl Flasher, log *logutil.Logger) (*App, error) {
	trigger, err := NewTrigger(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "trigger")
	}
	style, err := attention.ParseStyle(cfg.FlashStyle)
	if err != nil {
		return nil, errors.Wrap(err, "flash style")
	}
	a := &App{
		fl:      fl,
		log:     log,
		trigger: trigger,
		style:   style,
		count:   cfg.FlashRepeat(),
		cfg:     cfg,
	}
	log.Infof("trigger: %v", trigger)
	return a, nil
}

func (a *App) Attach(hp native.Provider) {
	a.hp = hp
}

//----------

func (a *App) OnWindow(ev interface{}) host.Control {
	switch t := ev.(type) {
	case *event.WindowClose:
		a.closed = true
		a.log.Infof("window closed")
		return host.Exit
	case *event.WindowResize:
		a.log.Debugf("window size: %vx%v", t.Rect.Dx(), t.Rect.Dy())
	}
	return host.Continue
}

func (a *App) OnKey(ev interface{}) host.Control {
	if kd, ok := ev.(*event.KeyDown); ok {
		a.log.Debugf("key down: %v", kd.KeySym)
	}
	a.check(ev)
	return host.Continue
}

func (a *App) OnMouse(ev *event.MouseDown) host.Control {
	a.log.Debugf("mouse down: %v at %v", ev.Button, ev.Point)
	a.check(ev)
	return host.Continue
}

func (a *App) OnLifecycle(ev interface{}) host.Control {
	a.check(ev)
	return host.Continue
}

//----------

func (a *App) check(ev interface{}) {
	if a.closed || !a.trigger.Fires(ev) {
		return
	}
	if a.hp == nil {
		a.log.Warnf("flash: no window attached")
		return
	}
	req := attention.NewRequest(a.style, a.count, a.cfg.FlashTimeout())
	if err := a.fl.Flash(a.hp, req); err != nil {
		a.log.Warnf("flash %v: %v", req.ID, err)
		return
	}
	a.flashes++
	a.log.Infof("flash requested: %v", req)
}

// Number of successful attention requests.
func (a *App) Flashes() int {
	return a.flashes
}
