package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/leovikii/gread/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("separate hosts do not share a bucket", func(t *testing.T) {
		t.Parallel()

		l := engine.NewHostLimiter(1) // 1 rps, burst 1

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))
		require.NoError(t, l.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("same host is throttled", func(t *testing.T) {
		t.Parallel()

		l := engine.NewHostLimiter(10)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled context unblocks the wait", func(t *testing.T) {
		t.Parallel()

		l := engine.NewHostLimiter(0.001)
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := l.Wait(ctx, "a.example.com")
		assert.Error(t, err)
	})
}
