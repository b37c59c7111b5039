package rdrand

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

var (
	invocationCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rdrand_invocations",
			Help: "Number of hardware random number requests.",
		},
		[]string{"width", "result"},
	)
	retryExhaustedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rdrand_retry_exhausted",
			Help: "Number of fetches that failed after exhausting the retry limit.",
		},
		[]string{"width"},
	)
	rangeRejectionCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rdrand_range_rejections",
			Help: "Number of values rejected by range reduction.",
		},
	)
	reseedCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rdrand_reseeds",
			Help: "Number of reseed windows issued.",
		},
		[]string{"result"},
	)
	rdrandCollectors = []prometheus.Collector{
		invocationCount,
		retryExhaustedCount,
		rangeRejectionCount,
		reseedCount,
	}

	// Per-width counters, resolved in init.
	widthMetrics = map[Width]*widthCounters{}

	metricsOnce sync.Once
)

type widthCounters struct {
	success   prometheus.Counter
	failure   prometheus.Counter
	exhausted prometheus.Counter
}

// initMetrics registers the metrics collectors.
func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(rdrandCollectors...)
	})
}

func init() {
	for _, w := range []Width{Width8, Width16, Width32, Width64} {
		widthMetrics[w] = &widthCounters{
			success:   invocationCount.WithLabelValues(w.String(), resultSuccess),
			failure:   invocationCount.WithLabelValues(w.String(), resultFailure),
			exhausted: retryExhaustedCount.WithLabelValues(w.String()),
		}
	}
}
