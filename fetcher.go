package gread

import "context"

// Fetcher retrieves HTML from URLs. Implementations may issue plain
// HTTP requests or drive a browser for mirrors that gate content
// behind JavaScript.
type Fetcher interface {
	// Fetch returns the document at url. The context controls timeout
	// and cancellation. A non-success HTTP status is an error.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Warmer warms the local network cache for a resolved image source.
// Warming is best-effort: callers ignore failures.
type Warmer interface {
	Warm(ctx context.Context, imageURL string) error
}

// HostLimiter provides per-host rate limiting for outbound fetches.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
