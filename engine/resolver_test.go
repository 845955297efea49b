package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/engine"
	"github.com/leovikii/gread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	zeroDelays := []time.Duration{0, 0, 0}

	t.Run("fetches the item page and extracts the image", func(t *testing.T) {
		t.Parallel()

		r := &engine.Resolver{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com/s/a/1-1", url)
					return "<html>", nil
				},
			},
			Images: &mock.ImageExtractor{
				ExtractImageSourceFn: func(html, baseURL string) (string, error) {
					return "https://img.example.com/full/a.jpg", nil
				},
			},
			RetryDelays: zeroDelays,
		}

		src, err := r.Resolve(context.Background(), "https://example.com/s/a/1-1")
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/full/a.jpg", src)
	})

	t.Run("a missing image element is retried like a fetch failure", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		extracts := 0
		r := &engine.Resolver{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetches++
					return "<html>", nil
				},
			},
			Images: &mock.ImageExtractor{
				ExtractImageSourceFn: func(html, baseURL string) (string, error) {
					extracts++
					if extracts < 2 {
						return "", gread.Errorf(gread.ENOTFOUND, "no image element")
					}
					return "https://img.example.com/full/a.jpg", nil
				},
			},
			RetryDelays: zeroDelays,
		}

		src, err := r.Resolve(context.Background(), "https://example.com/s/a/1-1")
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/full/a.jpg", src)
		assert.Equal(t, 2, fetches)
	})

	t.Run("exhausting retries yields a definite failure", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		r := &engine.Resolver{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					attempts++
					return "", gread.Errorf(gread.EUNAVAILABLE, "item page down")
				},
			},
			Images:      &mock.ImageExtractor{},
			RetryDelays: zeroDelays,
		}

		_, err := r.Resolve(context.Background(), "https://example.com/s/a/1-1")
		assert.Equal(t, gread.EUNAVAILABLE, gread.ErrorCode(err))
		assert.Equal(t, 4, attempts)
	})

	t.Run("waits on the host limiter before fetching", func(t *testing.T) {
		t.Parallel()

		var waitedHost string
		r := &engine.Resolver{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html>", nil
				},
			},
			Images: &mock.ImageExtractor{
				ExtractImageSourceFn: func(html, baseURL string) (string, error) {
					return "https://img.example.com/full/a.jpg", nil
				},
			},
			Limiter: &mock.HostLimiter{
				WaitFn: func(_ context.Context, host string) error {
					waitedHost = host
					return nil
				},
			},
			RetryDelays: zeroDelays,
		}

		_, err := r.Resolve(context.Background(), "https://example.com/s/a/1-1")
		require.NoError(t, err)
		assert.Equal(t, "example.com", waitedHost)
	})
}
