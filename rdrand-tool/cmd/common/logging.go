package common

import (
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/common"
	"github.com/oasisprotocol/rdrand/common/logging"
	"github.com/oasisprotocol/rdrand/config"
)

const (
	cfgLogFile  = "log.file"
	cfgLogFmt   = "log.format"
	cfgLogLevel = "log.level"
	// Custom log levels for modules are not supported by cobra.
	// Use the config file instead.
)

// loggingFlags has the logging flags.
var loggingFlags = flag.NewFlagSet("", flag.ContinueOnError)

func initLogging() error {
	logCfg := config.GlobalConfig.Common.Log

	var logLevel logging.Level
	moduleLevels := map[string]logging.Level{}
	for k, v := range logCfg.Level {
		var lvl logging.Level
		if err := lvl.Set(v); err != nil {
			return err
		}
		if k == "default" {
			logLevel = lvl
			continue
		}
		moduleLevels[k] = lvl
	}

	var logFmt logging.Format
	if err := logFmt.Set(logCfg.Format); err != nil {
		return err
	}

	// Generated values go to stdout, keep it clean.
	var w io.Writer = os.Stderr
	if logCfg.File != "" {
		if err := common.Mkdir(filepath.Dir(logCfg.File)); err != nil {
			return err
		}
		var err error
		if w, err = os.OpenFile(logCfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err != nil {
			return err
		}
	}

	return logging.Initialize(w, logFmt, logLevel, moduleLevels)
}

func initLoggingFlags() {
	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn

	loggingFlags.String(cfgLogFile, "", "log file")
	loggingFlags.Var(&logFmt, cfgLogFmt, "log format")
	loggingFlags.Var(&logLevel, cfgLogLevel, "log level")

	_ = viper.BindPFlags(loggingFlags)
}
