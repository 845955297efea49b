package main

import (
	"fmt"
	"io"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/engine"
	"github.com/leovikii/gread/fs"
	"github.com/schollz/progressbar/v3"
)

// Run executes the read command: it aggregates the gallery page by
// page, resolving every item, and prints the resolved full-size image
// URLs to stdout in gallery order.
func (c *ReadCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", c.URL, err)
	}

	prefs, err := deps.Prefs.LoadPreferences(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	view := newBarView(deps.Stderr)
	cfg := engine.Config{
		Adapter:     deps.Adapter,
		Fetcher:     deps.Fetcher,
		Resolver:    deps.Resolver,
		View:        view,
		Stats:       deps.Stats,
		Limiter:     deps.Limiter,
		Concurrency: c.Concurrency,
		AutoAdvance: prefs.AutoAdvance,
	}
	if c.Prefetch {
		cfg.Warmer = deps.Warmer
	}
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}

	if err := e.Init(deps.Ctx, c.URL, html); err != nil {
		return err
	}

	rendered := 1
	for e.HasNext() && (c.Pages == 0 || rendered < c.Pages) {
		if c.Prefetch {
			_ = e.Prefetch(deps.Ctx) // warm-up only, failures are harmless
		}
		if err := e.Advance(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "page %d: %s\n", e.CurrentPage()+1, gread.ErrorMessage(err))
			break
		}
		rendered++
	}
	e.Wait()
	view.finish()

	resolved, failed := 0, 0
	for _, item := range e.Items() {
		if item.State == gread.ItemResolved {
			fmt.Fprintln(deps.Stdout, item.ImageSrc)
			resolved++
			continue
		}
		failed++
	}

	fmt.Fprintf(deps.Stderr, "%d/%d pages, %d images resolved, %d failed\n",
		e.CurrentPage(), e.TotalPages(), resolved, failed)

	if c.Out != "" {
		path, err := fs.NewExporter(c.Out).Export(e.Gallery(), e.Items())
		if err != nil {
			return fmt.Errorf("failed to export manifest: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "exported %s\n", path)
	}
	return nil
}

// barView projects engine progress onto a terminal progress bar. The
// engine serializes all view calls, so no locking is needed here.
type barView struct {
	bar *progressbar.ProgressBar
	max int
}

var _ gread.View = (*barView)(nil)

func newBarView(w io.Writer) *barView {
	return &barView{
		bar: progressbar.NewOptions(0,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("page 1"),
			progressbar.OptionShowCount(),
		),
	}
}

func (v *barView) PageStarted(page *gread.Page) {
	v.max += len(page.ItemURLs)
	v.bar.ChangeMax(v.max)
	v.bar.Describe(fmt.Sprintf("page %d", page.Index))
}

func (v *barView) ItemUpdated(item *gread.Item) {
	// Placeholders don't count; only settled items move the bar.
	if item.State == gread.ItemResolved || item.State == gread.ItemFailed {
		_ = v.bar.Add(1)
	}
}

func (v *barView) finish() {
	_ = v.bar.Finish()
}
