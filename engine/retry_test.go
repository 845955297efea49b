package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	zeroDelays := []time.Duration{0, 0, 0}

	t.Run("first attempt succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		html, err := engine.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(_ context.Context, _ string) (string, error) {
				attempts++
				return "<html>", nil
			}, nil, zeroDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		html, err := engine.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(_ context.Context, _ string) (string, error) {
				attempts++
				if attempts < 3 {
					return "", gread.Errorf(gread.EUNAVAILABLE, "transient")
				}
				return "<html>", nil
			}, nil, zeroDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhaustion makes exactly one more attempt than delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		_, err := engine.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(_ context.Context, _ string) (string, error) {
				attempts++
				return "", gread.Errorf(gread.EUNAVAILABLE, "down")
			}, nil, zeroDelays)
		assert.Equal(t, gread.EUNAVAILABLE, gread.ErrorCode(err))
		assert.Equal(t, len(zeroDelays)+1, attempts)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		_, err := engine.FetchWithRetryDelays(ctx, "https://example.com",
			func(_ context.Context, _ string) (string, error) {
				attempts++
				cancel()
				return "", gread.Errorf(gread.EUNAVAILABLE, "down")
			}, nil, []time.Duration{time.Minute})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("logger sees each retry", func(t *testing.T) {
		t.Parallel()

		lines := 0
		_, _ = engine.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(_ context.Context, _ string) (string, error) {
				return "", gread.Errorf(gread.EUNAVAILABLE, "down")
			},
			func(format string, args ...any) { lines++ },
			zeroDelays)
		assert.Equal(t, len(zeroDelays), lines)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := engine.DefaultRetryDelays()
	require.Len(t, delays, 3)
	for _, d := range delays {
		assert.Equal(t, time.Second, d)
	}
}
