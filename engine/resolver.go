package engine

import (
	"context"
	"net/url"
	"time"

	"github.com/leovikii/gread"
)

// Compile-time interface verification.
var _ gread.Resolver = (*Resolver)(nil)

// Resolver resolves an item's detail URL to its full-size image source
// by fetching the item page and extracting the image element, with
// bounded sequential retry. Each Resolve call is independent;
// arbitrarily many may run concurrently for different items.
type Resolver struct {
	Fetcher gread.Fetcher
	Images  gread.ImageExtractor

	// Limiter, if set, paces item page fetches per host.
	Limiter gread.HostLimiter

	// RetryDelays overrides the pause schedule between attempts.
	// Nil means DefaultRetryDelays (three retries, 1s apart).
	RetryDelays []time.Duration

	// Logger, if set, receives a line per retry attempt.
	Logger LogFunc
}

// Resolve fetches itemURL and extracts the image source. A non-success
// HTTP status and a missing image element both count as failed
// attempts and are retried alike; exhausting retries returns the last
// error. The outcome is always definite.
func (r *Resolver) Resolve(ctx context.Context, itemURL string) (string, error) {
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	attempt := func(ctx context.Context, itemURL string) (string, error) {
		if r.Limiter != nil {
			host := hostOf(itemURL)
			if err := r.Limiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
		html, err := r.Fetcher.Fetch(ctx, itemURL)
		if err != nil {
			return "", err
		}
		return r.Images.ExtractImageSource(html, itemURL)
	}

	return FetchWithRetryDelays(ctx, itemURL, attempt, r.Logger, delays)
}

// hostOf extracts the host for rate limiting; an unparsable URL maps
// to the empty-host bucket rather than failing the attempt.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
