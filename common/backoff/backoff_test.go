package backoff

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

func TestBackOffDefaults(t *testing.T) {
	require := require.New(t)

	b := NewExponentialBackOff()
	require.EqualValues(0, b.MaxElapsedTime, "default backoff should never stop")
	require.NotEqual(backoff.Stop, b.NextBackOff())

	bounded := NewBoundedBackOff(time.Millisecond, 5*time.Millisecond)
	require.Equal(time.Millisecond, bounded.InitialInterval)
	require.Equal(5*time.Millisecond, bounded.MaxElapsedTime)

	// Drain the bounded backoff, it must eventually give up.
	deadline := time.Now().Add(time.Second)
	for bounded.NextBackOff() != backoff.Stop {
		require.True(time.Now().Before(deadline), "bounded backoff should stop")
		time.Sleep(time.Millisecond)
	}
}
