package goquery

import (
	"github.com/leovikii/gread"
)

// Compile-time interface verification.
var _ gread.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor extracts the full-size image source from an item
// page using the configured image element marker.
type ImageExtractor struct {
	selector string
}

// NewImageExtractor creates an ImageExtractor for the given markers.
func NewImageExtractor(markers Markers) *ImageExtractor {
	return &ImageExtractor{selector: markers.ImageElement}
}

// ExtractImageSource returns the image source from the item page.
// Returns ENOTFOUND when the expected image element or its source
// attribute is absent.
func (e *ImageExtractor) ExtractImageSource(html, baseURL string) (string, error) {
	doc, base, ok := parse(html, baseURL)
	if !ok {
		return "", gread.Errorf(gread.EINVALID, "invalid item document or base URL %q", baseURL)
	}

	src, exists := doc.Find(e.selector).First().Attr("src")
	if !exists || src == "" {
		return "", gread.Errorf(gread.ENOTFOUND, "image element %q not found", e.selector)
	}

	resolved := resolveURL(base, src)
	if resolved == "" {
		return "", gread.Errorf(gread.ENOTFOUND, "image element %q has unusable source", e.selector)
	}
	return resolved, nil
}
