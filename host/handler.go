package host

import (
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

type Control int

const (
	Continue Control = iota
	Exit
)

// Handler receives the events of the host loop, one category per method.
// Calls never overlap.
type Handler interface {
	OnWindow(ev interface{}) Control    // *event.WindowClose, *event.WindowResize
	OnKey(ev interface{}) Control       // *event.KeyDown, *event.KeyUp
	OnMouse(ev *event.MouseDown) Control
	OnLifecycle(ev interface{}) Control // *event.Resumed, *event.Suspended
}

// BaseHandler can be embedded to implement only some of the methods.
type BaseHandler struct{}

func (BaseHandler) OnWindow(ev interface{}) Control     { return Continue }
func (BaseHandler) OnKey(ev interface{}) Control        { return Continue }
func (BaseHandler) OnMouse(ev *event.MouseDown) Control { return Continue }
func (BaseHandler) OnLifecycle(ev interface{}) Control  { return Continue }
