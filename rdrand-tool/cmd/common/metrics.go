package common

import (
	"os"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/rdrand/config"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/metrics"
	metricsConfig "github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/metrics/config"
)

const (
	cfgMetricsDump   = "metrics.dump"
	cfgMetricsFormat = "metrics.format"
)

var metricsFlags = flag.NewFlagSet("", flag.ContinueOnError)

// DumpMetrics writes the collected metrics to stderr if requested.
func DumpMetrics() {
	cfg := config.GlobalConfig.Metrics
	if !cfg.Dump {
		return
	}
	if err := metrics.Dump(os.Stderr, cfg.Format); err != nil {
		rootLog.Error("failed to dump metrics",
			"err", err,
		)
	}
}

func initMetricsFlags() {
	metricsFlags.Bool(cfgMetricsDump, false, "dump collected metrics to stderr on exit")
	metricsFlags.String(cfgMetricsFormat, metricsConfig.FormatText, "metrics dump format [text,openmetrics]")

	_ = viper.BindPFlags(metricsFlags)
}
