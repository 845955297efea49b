package gread

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Gallery identifies one gallery across reloads. The Key is derived
// from the gallery's host and path only, so the same gallery reached
// through different page offsets maps to the same identity.
type Gallery struct {
	URL string // gallery URL as loaded, including any page offset
	Key string // stable identity key derived from host+path
}

// NewGallery parses rawURL and derives the gallery identity.
func NewGallery(rawURL string) (*Gallery, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid gallery URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "gallery URL %q has no host", rawURL)
	}
	return &Gallery{
		URL: rawURL,
		Key: GalleryKey(u.Host, u.Path),
	}, nil
}

// GalleryKey computes the stable identity key for a gallery path.
func GalleryKey(host, path string) string {
	h := xxhash.Sum64String(host + path)
	return fmt.Sprintf("%x", h)
}

// CurrentPageFromURL derives the 1-based page the reader starts on
// from the zero-based "p" query parameter. A missing or malformed
// parameter means the first page.
func CurrentPageFromURL(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 1
	}
	p, err := strconv.Atoi(u.Query().Get("p"))
	if err != nil || p < 0 {
		return 1
	}
	return p + 1
}

// ItemState is the lifecycle state of a single item.
type ItemState int

// Item lifecycle states. Resolved is terminal: once an item carries
// its image source, no later write may change it.
const (
	ItemPending ItemState = iota
	ItemLoading
	ItemResolved
	ItemFailed
)

// String returns a human-readable state name.
func (s ItemState) String() string {
	switch s {
	case ItemPending:
		return "pending"
	case ItemLoading:
		return "loading"
	case ItemResolved:
		return "resolved"
	case ItemFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Item is one image within a page. Its position is fixed when the page
// is parsed; only State and ImageSrc change afterwards.
type Item struct {
	PageIndex int       // 1-based index of the owning page
	Position  int       // 0-based position within the page
	SourceURL string    // per-item detail link
	State     ItemState
	ImageSrc  string    // set when State == ItemResolved
}

// Page is one server-paginated batch of item links. Immutable once
// created; the engine never re-fetches a page it has already rendered.
type Page struct {
	Index       int      // 1-based virtual page index
	ItemURLs    []string // ordered item detail links as discovered
	NextPageURL string   // href of the following page, empty on the last page
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Index < 1 {
		return Errorf(EINVALID, "page index must be positive, got %d", p.Index)
	}
	return nil
}
