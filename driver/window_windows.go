//go:build windows && !xproto

package driver

import (
	"github.com/jmigpin/flashwin/driver/windriver"
)

func NewWindow(opt *Options) (Window, error) {
	win, err := windriver.NewWindow(opt.Title, opt.Width, opt.Height)
	if err != nil {
		return nil, err
	}
	return win, nil
}
