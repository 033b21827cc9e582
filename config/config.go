// Package config loads the program settings.
// Priority: environment variables > local config file > defaults.
package config

import (
	"image"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	EnvPrefix       = "FLASHWIN_"
	DefaultFilename = "flashwin.json"
)

const (
	TriggerClick  = "click"
	TriggerKey    = "key"
	TriggerResume = "resume"
)

type Configuration struct {
	Title  string `koanf:"title" validate:"required"`
	Width  int    `koanf:"width" validate:"min=1,max=16384"`
	Height int    `koanf:"height" validate:"min=1,max=16384"`

	Trigger    string `koanf:"trigger" validate:"oneof=click key resume"`
	TriggerKey string `koanf:"trigger_key" validate:"required_if=Trigger key"`
	RectX      int    `koanf:"rect_x" validate:"min=0"`
	RectY      int    `koanf:"rect_y" validate:"min=0"`
	RectWidth  int    `koanf:"rect_width" validate:"min=1"`
	RectHeight int    `koanf:"rect_height" validate:"min=1"`

	FlashStyle     string `koanf:"flash_style" validate:"oneof=all tray continuous stop"`
	FlashCount     int    `koanf:"flash_count" validate:"min=0,max=4294967295"`
	FlashTimeoutMs int    `koanf:"flash_timeout_ms" validate:"min=0"`

	IconPath  string `koanf:"icon_path"`
	WatchIcon bool   `koanf:"watch_icon"`

	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

func (cfg *Configuration) TriggerRect() image.Rectangle {
	return image.Rect(cfg.RectX, cfg.RectY, cfg.RectX+cfg.RectWidth, cfg.RectY+cfg.RectHeight)
}

// Validated to fit, see the flash_count tag.
func (cfg *Configuration) FlashRepeat() uint32 {
	return uint32(cfg.FlashCount)
}

func (cfg *Configuration) FlashTimeout() time.Duration {
	return time.Duration(cfg.FlashTimeoutMs) * time.Millisecond
}

//----------

// Load reads the config file if it exists (empty filename skips it), then
// applies environment overrides and validates the result.
func Load(filename string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, errors.Wrap(err, "defaults")
		}
	}

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load config: %v", filename)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, errors.Wrap(err, "load env")
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Configuration) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "config validation failed")
	}
	return nil
}

// FLASHWIN_FLASH_COUNT -> flash_count
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
