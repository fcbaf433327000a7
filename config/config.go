// Package config defines the howtall configuration file.
package config

import (
	"github.com/invopop/jsonschema"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/facenskin/howtall/display"
	"github.com/facenskin/howtall/logging"
	"github.com/facenskin/howtall/units"
)

// Default display surface, the size of the tracker's depth image.
const (
	DefaultDisplayWidth  = 512
	DefaultDisplayHeight = 424
)

// Config configures how heights are reported and where scaled joints are drawn.
type Config struct {
	ConfigFilePath string `json:"-"`

	MeasurementSystem string  `json:"measurement_system,omitempty" jsonschema:"enum=metric,enum=imperial,default=metric"`
	Display           Display `json:"display"`
	LogLevel          string  `json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	// LogFile, when set, also writes JSON logs to this file, rotating it as it grows.
	LogFile string `json:"log_file,omitempty"`
}

// Display is the surface joints are scaled onto.
type Display struct {
	Width  int     `json:"width" jsonschema:"minimum=1"`
	Height int     `json:"height" jsonschema:"minimum=1"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MeasurementSystem: units.Metric.String(),
		Display: Display{
			Width:  DefaultDisplayWidth,
			Height: DefaultDisplayHeight,
			MaxX:   display.DefaultExtent,
			MaxY:   display.DefaultExtent,
		},
		LogLevel: "info",
	}
}

// Validate returns every problem with the config. Field paths are relative to path.
func (c *Config) Validate(path string) error {
	var errs error
	if _, err := units.ParseMeasurementSystem(c.MeasurementSystem); err != nil {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path+".measurement_system", err))
	}
	if err := c.Scaler().Validate(); err != nil {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path+".display", err))
	}
	if c.LogLevel == "" {
		errs = multierr.Append(errs, goutils.NewConfigValidationFieldRequiredError(path, "log_level"))
	} else if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path+".log_level", err))
	}
	return errs
}

// System returns the configured measurement system, metric if it does not parse.
func (c *Config) System() units.MeasurementSystem {
	s, err := units.ParseMeasurementSystem(c.MeasurementSystem)
	if err != nil {
		return units.Metric
	}
	return s
}

// Scaler returns the display scaler described by the config.
func (c *Config) Scaler() display.Scaler {
	return display.Scaler{
		Width:  c.Display.Width,
		Height: c.Display.Height,
		MaxX:   c.Display.MaxX,
		MaxY:   c.Display.MaxY,
	}
}

// Level returns the configured log level, info if it does not parse.
func (c *Config) Level() logging.Level {
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Schema returns the JSON schema of the config file.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
