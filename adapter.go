package gread

// Adapter extracts gallery structure from a page's HTML. The exact
// markup markers (item link collection, pagination control, image
// count caption) are a contract with the specific gallery site and
// belong to the implementation's configuration.
//
// Adapters must tolerate documents missing any expected element by
// returning the documented fallback value rather than failing; a
// half-loaded or redesigned page degrades the reader to single-page
// mode, it never breaks it.
type Adapter interface {
	// ExtractItems returns the ordered item detail URLs found on the
	// page, resolved against baseURL. Returns nil when the document
	// has no item collection.
	ExtractItems(html, baseURL string) []string

	// ExtractNextPageURL returns the href of the pagination link that
	// leads forward, resolved against baseURL, or an empty string when
	// the page is the last one.
	ExtractNextPageURL(html, baseURL string) string

	// ExtractTotalPages computes the total page count. It tries the
	// human-readable image count caption divided by itemsPerPageHint
	// (ceiling; hint defaults to 20 when non-positive), then the
	// highest numeric pagination link, then falls back to 1.
	ExtractTotalPages(html string, itemsPerPageHint int) int
}
