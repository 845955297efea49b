package mock

import "github.com/leovikii/gread"

var _ gread.Adapter = (*Adapter)(nil)

// Adapter is a mock implementation of gread.Adapter.
type Adapter struct {
	ExtractItemsFn       func(html, baseURL string) []string
	ExtractNextPageURLFn func(html, baseURL string) string
	ExtractTotalPagesFn  func(html string, itemsPerPageHint int) int
}

func (a *Adapter) ExtractItems(html, baseURL string) []string {
	return a.ExtractItemsFn(html, baseURL)
}

func (a *Adapter) ExtractNextPageURL(html, baseURL string) string {
	return a.ExtractNextPageURLFn(html, baseURL)
}

func (a *Adapter) ExtractTotalPages(html string, itemsPerPageHint int) int {
	return a.ExtractTotalPagesFn(html, itemsPerPageHint)
}

var _ gread.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of gread.ImageExtractor.
type ImageExtractor struct {
	ExtractImageSourceFn func(html, baseURL string) (string, error)
}

func (e *ImageExtractor) ExtractImageSource(html, baseURL string) (string, error) {
	return e.ExtractImageSourceFn(html, baseURL)
}
