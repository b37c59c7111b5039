// Package config implements global metrics configuration options.
package config

import "fmt"

const (
	// FormatText is the Prometheus text exposition format.
	FormatText = "text"
	// FormatOpenMetrics is the OpenMetrics text format.
	FormatOpenMetrics = "openmetrics"
)

// Config is the metrics configuration structure.
type Config struct {
	// Dump collected metrics to stderr after each command.
	Dump bool `yaml:"dump"`
	// Exposition format of the dump (text, openmetrics).
	Format string `yaml:"format,omitempty"`
}

// Validate validates the configuration settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatOpenMetrics:
	default:
		return fmt.Errorf("unknown metrics format: %s", c.Format)
	}
	return nil
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() Config {
	return Config{
		Dump:   false,
		Format: FormatText,
	}
}
