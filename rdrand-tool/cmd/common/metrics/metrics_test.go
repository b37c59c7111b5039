package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/metrics/config"
)

func TestDumpFrom(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	kept := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rdrand_test_events",
		Help: "Test counter.",
	})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "unrelated_events",
		Help: "Unrelated counter.",
	})
	reg.MustRegister(kept, dropped)
	kept.Add(3)
	dropped.Inc()

	var buf bytes.Buffer
	require.NoError(DumpFrom(reg, &buf, config.FormatText))
	require.Contains(buf.String(), "rdrand_test_events 3")
	require.NotContains(buf.String(), "unrelated_events")

	buf.Reset()
	require.NoError(DumpFrom(reg, &buf, config.FormatOpenMetrics))
	// Counters lacking the _total suffix are emitted untyped.
	require.Contains(buf.String(), "# TYPE rdrand_test_events unknown")
	require.Contains(buf.String(), "rdrand_test_events 3.0")
	require.NotContains(buf.String(), "unrelated_events")
	require.Contains(buf.String(), "# EOF")

	require.Error(DumpFrom(reg, &buf, "protobuf"))
}
