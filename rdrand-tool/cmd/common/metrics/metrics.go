// Package metrics implements dumping of the collected prometheus metrics.
package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/metrics/config"
)

// MetricsPrefix is the prefix shared by all exported generator metrics.
const MetricsPrefix = "rdrand_"

// Dump writes the generator metrics from the default gatherer to w.
func Dump(w io.Writer, format string) error {
	return DumpFrom(prometheus.DefaultGatherer, w, format)
}

// DumpFrom writes the generator metrics collected by g to w.
//
// The generator counters do not carry a _total suffix, so the OpenMetrics
// encoding reports them with the unknown type.
func DumpFrom(g prometheus.Gatherer, w io.Writer, format string) error {
	var fmtType expfmt.Format
	switch format {
	case config.FormatText:
		fmtType = expfmt.FmtText
	case config.FormatOpenMetrics:
		fmtType = expfmt.FmtOpenMetrics
	default:
		return fmt.Errorf("unknown metrics format: %s", format)
	}

	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, fmtType)
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), MetricsPrefix) {
			continue
		}
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}
