package engine

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch-or-resolve attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the delays between item resolution
// attempts: a fixed 1s pause, three retries. Item pages fail
// transiently under load; backing off further just stalls the reader.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, time.Second, time.Second}
}

// FetchWithRetryDelays attempts fetch until it succeeds or the delays
// are exhausted, pausing delays[i] after failed attempt i. The number
// of attempts is len(delays)+1. The last error is returned on
// exhaustion; retries for one URL are strictly sequential.
// The logger function, if provided, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
