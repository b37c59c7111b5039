// Package config implements the generator configuration options.
package config

import (
	"fmt"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
)

// Config is the generator configuration structure.
type Config struct {
	// Number of consecutive failed hardware requests tolerated per fetch.
	RetryLimit int `yaml:"retry_limit"`
	// Number of 64-bit generations issued per seed to force a reseed.
	ReseedWindow int `yaml:"reseed_window"`
}

// Validate validates the configuration settings.
func (c *Config) Validate() error {
	if c.RetryLimit < 1 || uint64(c.RetryLimit) > rdrand.MaxRetryLimit {
		return fmt.Errorf("retry_limit must be in [1, %d], got %d", uint64(rdrand.MaxRetryLimit), c.RetryLimit)
	}
	if c.ReseedWindow < 1 {
		return fmt.Errorf("reseed_window must be at least 1, got %d", c.ReseedWindow)
	}
	return nil
}

// Options returns the generator options matching the configuration.
func (c *Config) Options() []rdrand.Option {
	return []rdrand.Option{
		rdrand.WithRetryLimit(c.RetryLimit),
		rdrand.WithReseedWindow(c.ReseedWindow),
	}
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() Config {
	return Config{
		RetryLimit:   rdrand.DefaultRetryLimit,
		ReseedWindow: rdrand.ReseedWindow,
	}
}
