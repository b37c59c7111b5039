// Package config implements global configuration options.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/a8m/envsubst"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	rdrand "github.com/oasisprotocol/rdrand/common/crypto/rdrand/config"
	common "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/config"
	metrics "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/metrics/config"
)

// GlobalConfig holds the global configuration options.
var GlobalConfig Config

// Config is the top-level configuration structure.
type Config struct {
	Common  common.Config  `yaml:"common"`
	RDRAND  rdrand.Config  `yaml:"rdrand"`
	Metrics metrics.Config `yaml:"metrics,omitempty"`
}

// Validate validates the configuration settings, reporting every invalid
// section at once.
func (c *Config) Validate() error {
	var errs error
	if err := c.Common.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("common: %w", err))
	}
	if err := c.RDRAND.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("rdrand: %w", err))
	}
	if err := c.Metrics.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("metrics: %w", err))
	}
	return errs
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() Config {
	return Config{
		Common:  common.DefaultConfig(),
		RDRAND:  rdrand.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
	}
}

// Parse parses a configuration from raw YAML, substituting environment
// variables first. Fields missing from the input keep their defaults.
func Parse(raw []byte) (*Config, error) {
	raw, err := envsubst.Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to substitute environment variables: %w", err)
	}

	// Report error if any of the fields from the input are unknown.
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitConfig initializes the global configuration from the given file.
func InitConfig(cfgFile string) error {
	raw, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("unable to read config file '%s': %w", cfgFile, err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", cfgFile, err)
	}
	GlobalConfig = *cfg

	return nil
}

func init() {
	GlobalConfig = DefaultConfig()
}
