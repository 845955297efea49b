package mock

import "github.com/leovikii/gread"

var _ gread.View = (*View)(nil)

// View is a mock implementation of gread.View.
type View struct {
	PageStartedFn func(page *gread.Page)
	ItemUpdatedFn func(item *gread.Item)
}

func (v *View) PageStarted(page *gread.Page) {
	if v.PageStartedFn != nil {
		v.PageStartedFn(page)
	}
}

func (v *View) ItemUpdated(item *gread.Item) {
	if v.ItemUpdatedFn != nil {
		v.ItemUpdatedFn(item)
	}
}
