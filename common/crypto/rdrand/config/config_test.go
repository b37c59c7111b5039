package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
)

func TestValidate(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig()
	require.NoError(cfg.Validate(), "default config should be valid")
	require.Len(cfg.Options(), 2)

	for _, tc := range []struct {
		retryLimit   int
		reseedWindow int
		valid        bool
	}{
		{1, 1, true},
		{rdrand.DefaultRetryLimit, rdrand.ReseedWindow, true},
		{0, rdrand.ReseedWindow, false},
		{-1, rdrand.ReseedWindow, false},
		{rdrand.DefaultRetryLimit, 0, false},
	} {
		cfg = Config{RetryLimit: tc.retryLimit, ReseedWindow: tc.reseedWindow}
		err := cfg.Validate()
		if tc.valid {
			require.NoError(err, "config %+v", cfg)
		} else {
			require.Error(err, "config %+v", cfg)
		}
	}
}

func TestValidateRetryLimitOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int can not exceed the maximum retry limit")
	}
	require := require.New(t)

	var wide uint64 = rdrand.MaxRetryLimit
	cfg := DefaultConfig()

	cfg.RetryLimit = int(wide)
	require.NoError(cfg.Validate())

	cfg.RetryLimit = int(wide + 1)
	require.Error(cfg.Validate(), "retry limits past the maximum should be rejected")
}
