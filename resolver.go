package gread

import "context"

// Resolver resolves one item's detail URL to its full-size image
// source. Each call is independent and holds no cross-call state;
// arbitrarily many calls may be in flight concurrently for different
// items.
type Resolver interface {
	// Resolve fetches the item page and extracts the image source.
	// It always returns a definite outcome: the source URL, or an
	// error after retries are exhausted. It never panics across the
	// call boundary.
	Resolve(ctx context.Context, itemURL string) (string, error)
}

// ImageExtractor extracts the full-size image source from an item
// page's HTML.
type ImageExtractor interface {
	// ExtractImageSource returns the image source, or ENOTFOUND when
	// the expected image element is absent from the document.
	ExtractImageSource(html, baseURL string) (string, error)
}
