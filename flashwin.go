// Desktop window that asks the system to flash its taskbar entry.
package main

import (
	"fmt"
	"os"

	"github.com/jmigpin/flashwin/app"
	"github.com/jmigpin/flashwin/attention"
	"github.com/jmigpin/flashwin/config"
	"github.com/jmigpin/flashwin/driver"
	"github.com/jmigpin/flashwin/host"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flashwin",
		Short: "Open a window and flash its taskbar entry on a trigger",
		Long: "Open a window and flash its taskbar entry on a trigger.\n\n" +
			"Settings are read from " + config.DefaultFilename + " in the working directory,\n" +
			"then from " + config.EnvPrefix + "* environment variables.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// errors are reported only here, run does not log them
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "flashwin: %v\n", err)
			}
			return err
		},
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultFilename)
	if err != nil {
		return err
	}
	level, err := logutil.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logutil.New(os.Stderr, level)

	// no window is created if the icon can't be used
	var icon *imageutil.Icon
	if cfg.IconPath != "" {
		icon, err = imageutil.LoadIcon(cfg.IconPath)
		if err != nil {
			return err
		}
	}

	a, err := app.New(cfg, attention.NewSignal(log), log)
	if err != nil {
		return err
	}

	opts := &driver.Options{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}
	h, err := host.Create(opts, log)
	if err != nil {
		return err
	}
	a.Attach(h)

	if icon != nil {
		if err := h.SetIcon(icon); err != nil {
			log.Warnf("%v", err)
		}
		if cfg.WatchIcon {
			fw, err := app.WatchIcon(cfg.IconPath, h.Post, log)
			if err != nil {
				log.Warnf("icon watch: %v", err)
			} else {
				defer fw.Close()
			}
		}
	}

	return h.Run(a)
}
