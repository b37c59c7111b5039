// Package common implements common rdrand-tool command options and utilities.
package common

import (
	"fmt"
	"os"
	"sync"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/logging"
	"github.com/oasisprotocol/rdrand/config"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

const (
	// CfgConfigFile is the flag used to specify the config file.
	CfgConfigFile = "config"

	// CfgRetryLimit overrides rdrand.retry_limit from the config file.
	CfgRetryLimit = "rdrand.retry_limit"
	// CfgReseedWindow overrides rdrand.reseed_window from the config file.
	CfgReseedWindow = "rdrand.reseed_window"
)

var (
	// RootFlags has the flags that are common across all commands.
	RootFlags = flag.NewFlagSet("", flag.ContinueOnError)

	rootLog = logging.GetLogger("rdrand-tool")

	initOnce sync.Once
	initErr  error

	sourceLock sync.Mutex
	source     rdrand.Source = rdrand.HardwareSource{}
)

// Logger returns the command logger.
func Logger() *logging.Logger {
	return rootLog
}

// InitConfig initializes the command configuration.
//
// WARNING: This exits on failure, so it should only be used from a
// cobra.OnInitialize hook.
func InitConfig() {
	if err := loadConfig(); err != nil {
		EarlyLogAndExit(err)
	}
}

func loadConfig() error {
	if cfgFile := viper.GetString(CfgConfigFile); cfgFile != "" {
		if err := config.InitConfig(cfgFile); err != nil {
			return err
		}
	}

	// Explicitly set flags take precedence over the config file.
	cfg := &config.GlobalConfig
	if viper.IsSet(cfgLogFile) {
		cfg.Common.Log.File = viper.GetString(cfgLogFile)
	}
	if viper.IsSet(cfgLogFmt) {
		cfg.Common.Log.Format = viper.GetString(cfgLogFmt)
	}
	if viper.IsSet(cfgLogLevel) {
		if cfg.Common.Log.Level == nil {
			cfg.Common.Log.Level = make(map[string]string)
		}
		cfg.Common.Log.Level["default"] = viper.GetString(cfgLogLevel)
	}
	if viper.IsSet(CfgRetryLimit) {
		cfg.RDRAND.RetryLimit = viper.GetInt(CfgRetryLimit)
	}
	if viper.IsSet(CfgReseedWindow) {
		cfg.RDRAND.ReseedWindow = viper.GetInt(CfgReseedWindow)
	}
	if viper.IsSet(cfgMetricsDump) {
		cfg.Metrics.Dump = viper.GetBool(cfgMetricsDump)
	}
	if viper.IsSet(cfgMetricsFormat) {
		cfg.Metrics.Format = viper.GetString(cfgMetricsFormat)
	}

	return cfg.Validate()
}

// Init initializes the common environment across all commands.
func Init() error {
	initOnce.Do(func() {
		if initErr = initLogging(); initErr != nil {
			return
		}
		if initErr = ValidateOutputFormat(); initErr != nil {
			return
		}

		rootLog.Debug("common initialization complete",
			"retry_limit", config.GlobalConfig.RDRAND.RetryLimit,
			"reseed_window", config.GlobalConfig.RDRAND.ReseedWindow,
			"verbose", flags.Verbose(),
		)
	})

	return initErr
}

// SetSource replaces the entropy source used by Generator.
func SetSource(src rdrand.Source) {
	sourceLock.Lock()
	defer sourceLock.Unlock()

	source = src
}

// Generator creates a generator over the configured entropy source.
func Generator() (*rdrand.Generator, error) {
	sourceLock.Lock()
	src := source
	sourceLock.Unlock()

	g, err := rdrand.New(src, config.GlobalConfig.RDRAND.Options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	if err = g.CheckSupport(); err != nil {
		return nil, err
	}
	return g, nil
}

// EarlyLogAndExit logs the error and exits.
//
// WARNING: This should only be used prior to the logging system being
// initialized.
func EarlyLogAndExit(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	RootFlags.String(CfgConfigFile, "", "config file")
	RootFlags.Int(CfgRetryLimit, rdrand.DefaultRetryLimit, "consecutive failed hardware requests tolerated per fetch")
	RootFlags.Int(CfgReseedWindow, rdrand.ReseedWindow, "64-bit generations issued per seed")
	_ = viper.BindPFlags(RootFlags)

	initLoggingFlags()
	RootFlags.AddFlagSet(loggingFlags)
	initMetricsFlags()
	RootFlags.AddFlagSet(metricsFlags)
	RootFlags.AddFlagSet(flags.OutputFormatFlags)
	RootFlags.AddFlagSet(flags.VerboseFlags)
}
