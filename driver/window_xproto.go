//go:build !windows || xproto

package driver

import "github.com/jmigpin/flashwin/driver/xdriver"

func NewWindow(opt *Options) (Window, error) {
	win, err := xdriver.NewWindow(opt.Title, opt.Width, opt.Height)
	if err != nil {
		return nil, err
	}
	return win, nil
}
