package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/leovikii/gread"
)

// DefaultWarmTimeout bounds a single warm-up request. Image bodies are
// larger than documents, so this is looser than the fetch timeout.
const DefaultWarmTimeout = 30 * time.Second

// Ensure Warmer implements gread.Warmer at compile time.
var _ gread.Warmer = (*Warmer)(nil)

// Warmer warms the network cache for resolved image sources by
// fetching and discarding them. The point is to populate any
// intermediate cache (OS, proxy, CDN edge) before the reader scrolls
// to the image.
type Warmer struct {
	client    *http.Client
	userAgent string
}

// NewWarmer creates a new Warmer.
func NewWarmer(opts ...Option) *Warmer {
	f := &Fetcher{
		timeout:   DefaultWarmTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return &Warmer{
		client:    &http.Client{Timeout: f.timeout},
		userAgent: f.userAgent,
	}
}

// Warm fetches the image and discards the body.
func (w *Warmer) Warm(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", w.userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return gread.Errorf(gread.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, imageURL)
	}

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
