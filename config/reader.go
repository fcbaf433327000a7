package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/facenskin/howtall/logging"
)

// Read reads a config from the given file, expanding environment variables first.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
// Fields absent from the input keep their defaults.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	var attributes map[string]interface{}
	if err := json.NewDecoder(r).Decode(&attributes); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}

	cfg := Default()
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      cfg,
		Metadata:    &md,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrapf(err, "cannot decode config %q", originalPath)
	}
	cfg.ConfigFilePath = originalPath

	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	logger.Debugw("read config",
		"path", originalPath,
		"keys", md.Keys,
		"measurement_system", cfg.MeasurementSystem,
		"log_level", cfg.LogLevel,
	)
	return cfg, nil
}
