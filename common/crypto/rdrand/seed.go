package rdrand

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/oasisprotocol/rdrand/common/errors"
	"github.com/oasisprotocol/rdrand/common/logging"
)

// Seed returns a 64-bit value that was generated after the DRNG reseeded
// its conditioner from the hardware entropy source, making it suitable as
// seed or key material for a CSPRNG.
//
// This is done by issuing a full reseed window of 64-bit generations and
// keeping the last one. Every generation must succeed within the retry
// limit, otherwise ErrReseedIncomplete is returned and no value must be
// used.
func (g *Generator) Seed() (uint64, error) {
	var v uint64
	for round := 0; round < g.reseedWindow; round++ {
		var ok bool
		if v, ok = g.attempt(Width64); !ok {
			reseedCount.WithLabelValues(resultFailure).Inc()
			g.logger.Warn("reseed window interrupted",
				"round", round+1,
				"reseed_window", g.reseedWindow,
				"retry_limit", g.RetryLimit(),
				logging.LogEvent, logEventReseedFailed,
			)
			return 0, fmt.Errorf("%w (round %d of %d): %w", ErrReseedIncomplete, round+1, g.reseedWindow, ErrRetryExhausted)
		}
	}
	reseedCount.WithLabelValues(resultSuccess).Inc()

	return v, nil
}

// FillSeeds fills dst with values produced by Seed, returning the number of
// elements filled. On failure the elements past that count are undefined.
func (g *Generator) FillSeeds(dst []uint64) (int, error) {
	return fill(dst, g.Seed)
}

// SeedBlocks returns n values produced by Seed. On failure no values are
// returned.
func (g *Generator) SeedBlocks(n int) ([]uint64, error) {
	if n < 0 {
		return nil, errors.WithContextf(ErrInvalidCount, "%d seed blocks", n)
	}

	blocks := make([]uint64, n)
	if _, err := g.FillSeeds(blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// SeedWithBackOff calls Seed until it succeeds, waiting between attempts as
// dictated by the backoff policy. It gives up when the policy stops or the
// context is canceled.
func (g *Generator) SeedWithBackOff(ctx context.Context, b backoff.BackOff) (uint64, error) {
	if err := g.CheckSupport(); err != nil {
		return 0, err
	}

	var seed uint64
	op := func() (err error) {
		seed, err = g.Seed()
		return
	}
	notify := func(err error, d time.Duration) {
		g.logger.Warn("failed to generate seed, backing off",
			"err", err,
			"backoff", d,
		)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return 0, err
	}

	return seed, nil
}
