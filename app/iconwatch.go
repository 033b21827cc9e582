package app

import (
	"github.com/jmigpin/flashwin/host"
	"github.com/jmigpin/flashwin/util/fswatch"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/logutil"
)

// Reloads the icon when its file changes and posts it with post (usually
// host.Post). Decode failures keep the current icon.
func WatchIcon(filename string, post func(ev interface{}), log *logutil.Logger) (*fswatch.FileWatcher, error) {
	onChange := func(ev *fswatch.Event) {
		icon, err := imageutil.LoadIcon(filename)
		if err != nil {
			log.Warnf("icon reload (%v): %v", ev.Op, err)
			return
		}
		post(&host.IconReload{Icon: icon})
	}
	onErr := func(err error) {
		log.Warnf("icon watch: %v", err)
	}
	fw, err := fswatch.NewFileWatcher(filename, onChange, onErr)
	if err != nil {
		return nil, err
	}
	log.Debugf("watching icon: %v", fw.Name())
	return fw, nil
}
