// Package goquery provides CSS-selector based implementations of the
// gallery page adapter and the item image extractor. The selectors are
// a contract with the gallery site's markup and are configurable via
// Markers.
package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/leovikii/gread"
)

// Markers are the markup conventions the adapter relies on. They are
// configuration, not protocol: a site redesign changes Markers, not
// code.
type Markers struct {
	ItemLinks    string // per-item detail link collection
	Pagination   string // pagination control region
	PageLinks    string // page links within the pagination control
	CountCaption string // human-readable image count caption
	NextGlyph    string // visible label of the forward link
	ImageElement string // full-size image element on an item page
}

// DefaultMarkers returns the markers for the gallery site the reader
// was built against.
func DefaultMarkers() Markers {
	return Markers{
		ItemLinks:    "#gdt a",
		Pagination:   ".ptt",
		PageLinks:    "td a",
		CountCaption: ".gpc",
		NextGlyph:    ">",
		ImageElement: "#img",
	}
}

// DefaultItemsPerPage is the per-page item count assumed when no hint
// is available.
const DefaultItemsPerPage = 20

// countRe matches the "of N images" fragment of the count caption.
var countRe = regexp.MustCompile(`of\s+([\d,]+)\s+images`)

// Compile-time interface verification.
var _ gread.Adapter = (*Adapter)(nil)

// Adapter extracts gallery structure from HTML documents using CSS
// selectors. It is stateless and safe for concurrent use.
type Adapter struct {
	markers Markers
}

// NewAdapter creates an Adapter with the given markers.
func NewAdapter(markers Markers) *Adapter {
	return &Adapter{markers: markers}
}

// ExtractItems returns the ordered item detail URLs found on the page.
func (a *Adapter) ExtractItems(html, baseURL string) []string {
	doc, base, ok := parse(html, baseURL)
	if !ok {
		return nil
	}

	var urls []string
	doc.Find(a.markers.ItemLinks).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if resolved := resolveURL(base, href); resolved != "" {
			urls = append(urls, resolved)
		}
	})
	return urls
}

// ExtractNextPageURL returns the href of the forward pagination link,
// or an empty string on the last page or when the control is missing.
func (a *Adapter) ExtractNextPageURL(html, baseURL string) string {
	doc, base, ok := parse(html, baseURL)
	if !ok {
		return ""
	}

	var next string
	doc.Find(a.markers.Pagination).First().Find(a.markers.PageLinks).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(sel.Text(), a.markers.NextGlyph) {
			return true
		}
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}
		next = resolveURL(base, href)
		return false
	})
	return next
}

// ExtractTotalPages computes the total page count: the image count
// caption divided by the per-page hint (ceiling), then the highest
// numeric pagination link, then 1.
func (a *Adapter) ExtractTotalPages(html string, itemsPerPageHint int) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 1
	}

	if caption := doc.Find(a.markers.CountCaption).First().Text(); caption != "" {
		if m := countRe.FindStringSubmatch(caption); m != nil {
			totalImages, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
			if err == nil && totalImages > 0 {
				perPage := itemsPerPageHint
				if perPage <= 0 {
					perPage = DefaultItemsPerPage
				}
				return (totalImages + perPage - 1) / perPage
			}
		}
	}

	highest := 0
	doc.Find(a.markers.Pagination).First().Find(a.markers.PageLinks).Each(func(_ int, sel *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(sel.Text())); err == nil && n > highest {
			highest = n
		}
	})
	if highest > 0 {
		return highest
	}

	return 1
}

// parse builds a document and base URL, reporting failure instead of
// erroring so callers can degrade to their fallback values.
func parse(html, baseURL string) (*goquery.Document, *url.URL, bool) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, false
	}
	return doc, base, true
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
