// Package engine provides the page aggregation engine: it owns the
// ordered page/item model of one gallery session, drives sequential
// scroll-triggered page advances, speculatively prefetches the
// frontier page, and projects every state change onto a view in
// strict page-then-item order.
package engine

import (
	"context"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/leovikii/gread"
	"golang.org/x/sync/errgroup"
)

// Tunable scroll thresholds, consumed by the embedding scroll handler
// when translating scroll positions into Advance/Prefetch intents.
// The values are empirically tuned, not load-bearing.
const (
	// DefaultPrefetchDistance is the distance to the document bottom,
	// in pixels, below which a scroll event should request Prefetch.
	DefaultPrefetchDistance = 5000

	// DefaultScrollDebounceMillis is how long a scroll handler should
	// stay quiet after the last scroll event before firing.
	DefaultScrollDebounceMillis = 200
)

// DefaultConcurrency bounds the per-page item resolution fan-out.
const DefaultConcurrency = 8

// warmedExpectedItems sizes the Bloom filter deduplicating prefetch
// warm-ups; galleries top out at a few thousand items.
const (
	warmedExpectedItems     = 10000
	warmedFalsePositiveRate = 0.01
)

// Config holds the engine's collaborators and tunables.
type Config struct {
	Adapter  gread.Adapter
	Fetcher  gread.Fetcher
	Resolver gread.Resolver
	View     gread.View

	// Stats, if set, caches the total page count per gallery identity
	// so reloads skip recomputation.
	Stats gread.GalleryStatService

	// Warmer, if set, is handed resolved image sources during
	// prefetch to warm the network cache.
	Warmer gread.Warmer

	// Limiter, if set, paces gallery page fetches per host.
	Limiter gread.HostLimiter

	// Concurrency bounds the per-page resolution fan-out.
	// Defaults to DefaultConcurrency.
	Concurrency int

	// ItemsPerPageHint is the per-page item count used for total-page
	// computation. Zero means "use the first page's item count".
	ItemsPerPageHint int

	// AutoAdvance is the initial state of the scroll-trigger gate.
	AutoAdvance bool
}

// Engine aggregates a paginated gallery into one continuous, ordered
// item list. It is constructed once per gallery load and owns all
// session state; callers express user intent through its methods and
// observe results through the configured View.
//
// All state mutation happens under one mutex; the view observes
// changes in a consistent order because notifications are delivered
// while the mutex is held. Views must not call back into the engine.
type Engine struct {
	adapter  gread.Adapter
	fetcher  gread.Fetcher
	resolver gread.Resolver
	view     gread.View
	stats    gread.GalleryStatService
	warmer   gread.Warmer
	limiter  gread.HostLimiter

	concurrency int
	hint        int

	mu              sync.Mutex
	initialized     bool
	gallery         *gread.Gallery
	currentPage     int
	totalPages      int
	highestRendered int
	nextURL         string
	fetchInFlight   bool
	autoAdvance     bool
	prefetched      map[string]bool
	warmed          *bloom.BloomFilter
	pages           []*gread.Page
	items           []*gread.Item

	wg sync.WaitGroup // in-flight item resolutions and warm-ups
}

// New creates an Engine from the config. Adapter, Fetcher, Resolver
// and View are required.
func New(cfg Config) (*Engine, error) {
	if cfg.Adapter == nil || cfg.Fetcher == nil || cfg.Resolver == nil || cfg.View == nil {
		return nil, gread.Errorf(gread.EINVALID, "engine requires an adapter, fetcher, resolver and view")
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Engine{
		adapter:     cfg.Adapter,
		fetcher:     cfg.Fetcher,
		resolver:    cfg.Resolver,
		view:        cfg.View,
		stats:       cfg.Stats,
		warmer:      cfg.Warmer,
		limiter:     cfg.Limiter,
		concurrency: concurrency,
		hint:        cfg.ItemsPerPageHint,
		autoAdvance: cfg.AutoAdvance,
		prefetched:  make(map[string]bool),
		warmed:      bloom.NewWithEstimates(warmedExpectedItems, warmedFalsePositiveRate),
	}, nil
}

// Init seeds the session from the currently loaded document: derives
// the gallery identity and the 1-based current page from pageURL,
// establishes the total page count (cached value first, live
// heuristic otherwise), records the frontier, and renders the current
// page. Must be called exactly once before any other intent.
func (e *Engine) Init(ctx context.Context, pageURL, html string) error {
	gallery, err := gread.NewGallery(pageURL)
	if err != nil {
		return err
	}

	items := e.adapter.ExtractItems(html, pageURL)
	total := e.lookupTotalPages(ctx, gallery.Key, html, len(items))
	next := e.adapter.ExtractNextPageURL(html, pageURL)
	current := gread.CurrentPageFromURL(pageURL)

	e.mu.Lock()
	if e.initialized {
		e.mu.Unlock()
		return gread.Errorf(gread.EINTERNAL, "engine already initialized")
	}
	e.initialized = true
	e.gallery = gallery
	e.currentPage = current
	e.totalPages = total
	if e.currentPage > e.totalPages {
		// Stale or undercounted cache; totals only ever rise.
		e.totalPages = e.currentPage
	}
	e.nextURL = next
	page := e.appendPageLocked(current, items, next)
	e.mu.Unlock()

	e.saveTotalPages(ctx)
	e.dispatchResolutions(ctx, page)
	return nil
}

// Advance runs one sequential page advance: fetch the frontier page,
// append its items as placeholders in source order, move the frontier,
// then resolve the items concurrently. At most one advance is in
// flight at any time; a trigger arriving while one is pending is
// silently dropped, as is a trigger when no next page exists. A fetch
// failure clears the guard so a later trigger can retry the same
// frontier page; nothing is rendered for a failed fetch.
//
// Advance returns once the placeholders are committed; item
// resolutions continue in the background. Use Wait to drain them.
func (e *Engine) Advance(ctx context.Context) error {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return gread.Errorf(gread.EINTERNAL, "engine not initialized")
	}
	if e.fetchInFlight || e.nextURL == "" {
		e.mu.Unlock()
		return nil
	}
	e.fetchInFlight = true
	pageURL := e.nextURL
	e.mu.Unlock()

	html, err := e.fetchPage(ctx, pageURL)
	if err != nil {
		e.mu.Lock()
		e.fetchInFlight = false
		e.mu.Unlock()
		return err
	}

	items := e.adapter.ExtractItems(html, pageURL)
	next := e.adapter.ExtractNextPageURL(html, pageURL)

	e.mu.Lock()
	index := e.highestRendered + 1
	e.currentPage = index
	if index > e.totalPages {
		e.totalPages = index
	}
	e.nextURL = next
	page := e.appendPageLocked(index, items, next)
	e.fetchInFlight = false
	e.mu.Unlock()

	e.saveTotalPages(ctx)
	e.dispatchResolutions(ctx, page)
	return nil
}

// RetryItem re-resolves a single failed item, identified by its page
// index and position. It has no effect on sibling items or pages, and
// is a no-op for an item that already resolved.
func (e *Engine) RetryItem(ctx context.Context, pageIndex, position int) error {
	e.mu.Lock()
	item := e.findItemLocked(pageIndex, position)
	if item == nil {
		e.mu.Unlock()
		return gread.Errorf(gread.ENOTFOUND, "no item at page %d position %d", pageIndex, position)
	}
	if item.State == gread.ItemResolved {
		e.mu.Unlock()
		return nil
	}
	item.State = gread.ItemLoading
	e.notifyItemLocked(item)
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		src, err := e.resolver.Resolve(ctx, item.SourceURL)
		e.applyResolution(item, src, err)
	}()
	return nil
}

// SetAutoAdvance flips the scroll-trigger gate. The embedding scroll
// handler consults AutoAdvance before turning sentinel visibility
// into an Advance intent; the single-item viewer's near-end request
// bypasses the gate deliberately.
func (e *Engine) SetAutoAdvance(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoAdvance = on
}

// AutoAdvance reports the scroll-trigger gate state.
func (e *Engine) AutoAdvance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.autoAdvance
}

// Gallery returns the session's gallery identity.
func (e *Engine) Gallery() *gread.Gallery {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gallery
}

// CurrentPage returns the 1-based page the reader is on.
func (e *Engine) CurrentPage() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPage
}

// TotalPages returns the best-effort total page count. It is monotonic
// non-decreasing for the lifetime of the session.
func (e *Engine) TotalPages() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalPages
}

// HasNext reports whether a further page is known to exist.
func (e *Engine) HasNext() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextURL != ""
}

// Items returns a snapshot of the accumulated ordered item list.
func (e *Engine) Items() []gread.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := make([]gread.Item, len(e.items))
	for i, item := range e.items {
		snapshot[i] = *item
	}
	return snapshot
}

// Wait blocks until all in-flight item resolutions and prefetch
// warm-ups have settled.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// fetchPage fetches a gallery page document, pacing per host when a
// limiter is configured.
func (e *Engine) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, hostOf(pageURL)); err != nil {
			return "", err
		}
	}
	return e.fetcher.Fetch(ctx, pageURL)
}

// appendPageLocked commits a page and its placeholder items to the
// model and announces them to the view in source order. The caller
// must hold e.mu.
func (e *Engine) appendPageLocked(index int, itemURLs []string, next string) *gread.Page {
	page := &gread.Page{Index: index, ItemURLs: itemURLs, NextPageURL: next}
	e.pages = append(e.pages, page)
	e.highestRendered = index
	e.view.PageStarted(page)
	for i, u := range itemURLs {
		item := &gread.Item{
			PageIndex: index,
			Position:  i,
			SourceURL: u,
			State:     gread.ItemLoading,
		}
		e.items = append(e.items, item)
		e.notifyItemLocked(item)
	}
	return page
}

// dispatchResolutions fans out one Resolver call per item of the page,
// bounded by the configured concurrency. Results land in arbitrary
// order; each only ever touches its own reserved slot.
func (e *Engine) dispatchResolutions(ctx context.Context, page *gread.Page) {
	e.mu.Lock()
	var pending []*gread.Item
	for _, item := range e.items {
		if item.PageIndex == page.Index && item.State == gread.ItemLoading {
			pending = append(pending, item)
		}
	}
	e.mu.Unlock()
	if len(pending) == 0 {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		g := new(errgroup.Group)
		g.SetLimit(e.concurrency)
		for _, item := range pending {
			item := item
			g.Go(func() error {
				src, err := e.resolver.Resolve(ctx, item.SourceURL)
				e.applyResolution(item, src, err)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// applyResolution writes a resolver outcome back onto its item.
// Resolved is terminal: a racing duplicate resolution (prefetch and
// advance can target the same URLs) never downgrades it.
func (e *Engine) applyResolution(item *gread.Item, src string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if item.State == gread.ItemResolved {
		return
	}
	if err != nil {
		item.State = gread.ItemFailed
	} else {
		item.State = gread.ItemResolved
		item.ImageSrc = src
	}
	e.notifyItemLocked(item)
}

// notifyItemLocked hands the view a snapshot so the model stays
// authoritative. The caller must hold e.mu.
func (e *Engine) notifyItemLocked(item *gread.Item) {
	u := *item
	e.view.ItemUpdated(&u)
}

// findItemLocked locates an item by page index and position. The
// caller must hold e.mu.
func (e *Engine) findItemLocked(pageIndex, position int) *gread.Item {
	for _, item := range e.items {
		if item.PageIndex == pageIndex && item.Position == position {
			return item
		}
	}
	return nil
}

// lookupTotalPages resolves the session's total page count: the
// cached per-gallery value wins over the live heuristic so reloads
// are stable even when the current document would compute differently.
func (e *Engine) lookupTotalPages(ctx context.Context, galleryKey, html string, pageItemCount int) int {
	if e.stats != nil {
		if total, err := e.stats.FindTotalPages(ctx, galleryKey); err == nil && total > 0 {
			return total
		}
	}
	hint := e.hint
	if hint <= 0 {
		hint = pageItemCount
	}
	return e.adapter.ExtractTotalPages(html, hint)
}

// saveTotalPages persists the current total, best effort. The store
// only ever raises the value, keeping it monotonic across sessions.
func (e *Engine) saveTotalPages(ctx context.Context) {
	if e.stats == nil {
		return
	}
	e.mu.Lock()
	key, total := e.gallery.Key, e.totalPages
	e.mu.Unlock()
	_ = e.stats.SaveTotalPages(ctx, key, total)
}
