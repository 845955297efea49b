package engine

import (
	"context"

	"github.com/leovikii/gread"
	"golang.org/x/sync/errgroup"
)

// Prefetch speculatively warms the frontier page: it fetches the next
// page's item list and resolves every item purely to populate the
// network cache, rendering nothing and discarding all results. It is
// independent of Advance and may race it for the same URLs; rendered
// items are protected by Resolved being terminal.
//
// Page URLs are deduplicated: the dedup marker is set optimistically
// before the fetch, removed again if the fetch fails (so a later
// scroll event can retry), and kept forever on success. Failures of
// individual item resolutions or warm-ups are silently absorbed.
//
// Prefetch returns once the warm-up fan-out is dispatched; Wait
// drains it.
func (e *Engine) Prefetch(ctx context.Context) error {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return gread.Errorf(gread.EINTERNAL, "engine not initialized")
	}
	pageURL := e.nextURL
	if pageURL == "" || e.prefetched[pageURL] {
		e.mu.Unlock()
		return nil
	}
	e.prefetched[pageURL] = true
	e.mu.Unlock()

	html, err := e.fetchPage(ctx, pageURL)
	if err != nil {
		e.mu.Lock()
		delete(e.prefetched, pageURL)
		e.mu.Unlock()
		return err
	}

	itemURLs := e.adapter.ExtractItems(html, pageURL)

	// Skip items a previous prefetch already warmed. The filter is
	// probabilistic; a false positive only costs one skipped warm-up.
	var fresh []string
	e.mu.Lock()
	for _, u := range itemURLs {
		if !e.warmed.TestAndAddString(u) {
			fresh = append(fresh, u)
		}
	}
	e.mu.Unlock()
	if len(fresh) == 0 {
		return nil
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		g := new(errgroup.Group)
		g.SetLimit(e.concurrency)
		for _, itemURL := range fresh {
			itemURL := itemURL
			g.Go(func() error {
				src, err := e.resolver.Resolve(ctx, itemURL)
				if err != nil {
					return nil // cache warming is best-effort
				}
				if e.warmer != nil {
					_ = e.warmer.Warm(ctx, src)
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
	return nil
}
