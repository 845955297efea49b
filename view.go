package gread

// View is a projection of the engine's item model, typically a
// document the reader scrolls through. The engine owns the
// authoritative state; the view only mirrors it.
//
// Ordering contract: PageStarted is invoked in strictly increasing
// page-index order, and every item of a page is announced (as
// ItemUpdated with a non-terminal state) before any item of that page
// resolves. ItemUpdated identifies the slot by PageIndex and Position,
// so updates arriving out of completion order never move an item.
//
// Calls are serialized by the engine; implementations must not call
// back into the engine.
type View interface {
	// PageStarted announces a new page container before its items.
	PageStarted(page *Page)

	// ItemUpdated reports an item state change, including the initial
	// placeholder announcement.
	ItemUpdated(item *Item)
}

// NopView is a View that discards all notifications.
type NopView struct{}

// PageStarted implements View.
func (NopView) PageStarted(*Page) {}

// ItemUpdated implements View.
func (NopView) ItemUpdated(*Item) {}
