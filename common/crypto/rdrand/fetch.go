package rdrand

import "github.com/oasisprotocol/rdrand/common/logging"

// fetch performs up to retryLimit requests, returning the first success.
func (g *Generator) fetch(w Width) (uint64, error) {
	if v, ok := g.attempt(w); ok {
		return v, nil
	}

	widthMetrics[w].exhausted.Inc()
	g.logger.Debug("hardware request failed repeatedly",
		"width", w,
		"retry_limit", g.RetryLimit(),
		logging.LogEvent, logEventRetryExhausted,
	)
	return 0, ErrRetryExhausted
}

// attempt is the bounded retry loop shared by fetch and Seed.
func (g *Generator) attempt(w Width) (uint64, bool) {
	limit := g.RetryLimit()
	for i := 0; i < limit; i++ {
		v, ok := g.src.Step(w)
		if ok {
			widthMetrics[w].success.Inc()
			return v, true
		}
		widthMetrics[w].failure.Inc()
	}
	return 0, false
}

// Uint8 returns 8 random bits.
func (g *Generator) Uint8() (uint8, error) {
	v, err := g.fetch(Width8)
	return uint8(v), err
}

// Uint16 returns 16 random bits.
func (g *Generator) Uint16() (uint16, error) {
	v, err := g.fetch(Width16)
	return uint16(v), err
}

// Uint32 returns 32 random bits.
func (g *Generator) Uint32() (uint32, error) {
	v, err := g.fetch(Width32)
	return uint32(v), err
}

// Uint64 returns 64 random bits.
func (g *Generator) Uint64() (uint64, error) {
	return g.fetch(Width64)
}
