package rdrand

import (
	"math"
	"math/bits"
)

// rangeMask returns the smallest 2^n - 1 that is >= span.
func rangeMask(span uint32) uint32 {
	if span == 0 {
		return 0
	}
	return math.MaxUint32 >> (32 - bits.Len32(span))
}

// Range returns a uniformly distributed value in the closed interval
// bounded by min and max. The bounds may be given in either order.
//
// Random 32-bit values are masked down to the smallest all-ones bitmask
// covering the interval and rejected when they fall outside of it, which
// avoids the bias of a modulo reduction. Every rejection round is a fresh,
// independently retried fetch.
func (g *Generator) Range(min, max int32) (int32, error) {
	if min == max {
		return min, nil
	}
	if max < min {
		min, max = max, min
	}

	// Two's complement arithmetic keeps the span exact across the whole
	// int32 domain.
	span := uint32(max) - uint32(min)
	mask := rangeMask(span)
	for {
		v, err := g.Uint32()
		if err != nil {
			return 0, err
		}
		v &= mask
		if v <= span {
			return int32(uint32(min) + v), nil
		}
		rangeRejectionCount.Inc()
	}
}
