// Package config implements common configuration options.
package config

import (
	"fmt"

	"github.com/oasisprotocol/rdrand/common/logging"
)

// Config is the common configuration structure.
type Config struct {
	// Logging configuration options.
	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig is the common logging configuration structure.
type LogConfig struct {
	// Log file.
	File string `yaml:"file,omitempty"`
	// Log format (logfmt, json).
	Format string `yaml:"format,omitempty"`
	// Log level (debug, info, warn, error) per module.
	Level map[string]string `yaml:"level,omitempty"`
}

// Validate validates the configuration settings.
func (c *Config) Validate() error {
	var f logging.Format
	if err := f.Set(c.Log.Format); err != nil {
		return err
	}
	if _, ok := c.Log.Level["default"]; !ok {
		return fmt.Errorf("log: missing default level")
	}
	for module, lvl := range c.Log.Level {
		var l logging.Level
		if err := l.Set(lvl); err != nil {
			return fmt.Errorf("log: module '%s': %w", module, err)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			File:   "",
			Format: "logfmt",
			Level: map[string]string{
				"default": "warn",
			},
		},
	}
}
