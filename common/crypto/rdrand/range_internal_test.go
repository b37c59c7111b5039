package rdrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeMask(t *testing.T) {
	require := require.New(t)

	for _, tc := range []struct {
		span uint32
		mask uint32
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{5, 7},
		{7, 7},
		{8, 15},
		{1000, 1023},
		{1 << 31, math.MaxUint32},
		{math.MaxUint32, math.MaxUint32},
	} {
		require.Equal(tc.mask, rangeMask(tc.span), "span %d", tc.span)
	}
}

func TestWidthString(t *testing.T) {
	require := require.New(t)

	require.Equal("8", Width8.String())
	require.Equal("64", Width64.String())
	require.Equal("[invalid width: 12]", Width(12).String())

	_, ok := HardwareSource{}.Step(Width(12))
	require.False(ok, "invalid widths should fail")
}
