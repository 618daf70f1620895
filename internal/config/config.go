// Package config loads bigcalc settings.
//
// Settings are layered: built-in defaults, then a TOML file, then BIGCALC_*
// environment variables.
//
//	color = "auto"  # auto, on or off
//	jobs  = 4       # parallel lines for eval
//	state = ""      # stack state file for eval
package config

import (
	"errors"
	"io/fs"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds the command line settings.
type Config struct {
	Color string `toml:"color" env:"BIGCALC_COLOR"`
	Jobs  int    `toml:"jobs" env:"BIGCALC_JOBS"`
	State string `toml:"state" env:"BIGCALC_STATE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color: ColorAuto,
		Jobs:  runtime.GOMAXPROCS(0),
	}
}

// Load returns the default settings overlaid with the TOML file at path
// (skipped if path is empty or the file does not exist) and the
// environment.
func Load(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()

	if path != "" {
		_, err = toml.DecodeFile(path, &cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	err = env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return Error.New("invalid color %q (auto|on|off)", c.Color)
	}

	if c.Jobs < 1 {
		return Error.New("invalid jobs %d (must be at least 1)", c.Jobs)
	}

	return nil
}
