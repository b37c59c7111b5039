package mathrand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
	"github.com/oasisprotocol/rdrand/common/crypto/rdrand/tests"
)

func TestRngAdapter(t *testing.T) {
	const nrSamples = 1000 // XXX: ~30 is probably enough.

	src := tests.NewScriptedSource(0x5eed)
	g, err := rdrand.New(src)
	require.NoError(t, err, "rdrand.New")

	rng := rand.New(New(g))

	// Pearson's chi-squared test for goodness of fit.
	//
	// Sort of silly to do this repeatedly since the results are deterministic.
	samples := make([]int, 6)
	for i := 0; i < nrSamples; i++ {
		samples[rng.Intn(6)]++
	}

	chiSq, expected := float64(0), float64(nrSamples)/6
	for _, n := range samples {
		tmp := float64(n) - expected
		tmp *= tmp
		tmp /= expected
		chiSq += tmp
	}

	t.Logf("chiSq: %v", chiSq)
	require.True(t, chiSq < 20.515, "chiSquared < 20.515 (0.999)")

	// Each 64-bit draw is one hardware request.
	require.Equal(t, src.Calls(), src.Count(rdrand.Width64))
}

func TestRngAdapterFailure(t *testing.T) {
	require := require.New(t)

	src := tests.NewScriptedSource(1)
	src.FailFrom(0)
	g, err := rdrand.New(src)
	require.NoError(err, "rdrand.New")

	a := New(g)
	require.Panics(func() { _ = a.Uint64() }, "entropy failures should panic")
	require.Panics(func() { a.Seed(1) }, "seeding should panic")
}
