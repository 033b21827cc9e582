package driver

import (
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/imageutil"
)

type Window interface {
	NextEvent() interface{} // blocks; emits events from uiutil/event or errors
	Post(ev interface{})    // enqueue an event after the pending ones

	SetWindowName(string)
	SetIcon(*imageutil.Icon) error
	Close() error

	native.Provider
}

type Options struct {
	Title         string
	Width, Height int
}
