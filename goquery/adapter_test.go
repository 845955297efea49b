package goquery_test

import (
	"testing"

	"github.com/leovikii/gread/goquery"
	"github.com/stretchr/testify/assert"
)

const galleryPage = `
<html><body>
<p class="gpc">Showing 1 - 20 of 57 images</p>
<table class="ptt"><tr>
<td><a href="?p=0">1</a></td>
<td><a href="?p=1">2</a></td>
<td><a href="?p=2">3</a></td>
<td><a href="?p=1">&gt;</a></td>
</tr></table>
<div id="gdt">
<a href="/s/aaa/1-1">one</a>
<a href="/s/bbb/1-2">two</a>
<a href="/s/ccc/1-3">three</a>
</div>
</body></html>`

const base = "https://example.com/g/1/a/"

func TestAdapter_ExtractItems(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewAdapter(goquery.DefaultMarkers())

	t.Run("returns item links in source order, resolved", func(t *testing.T) {
		t.Parallel()

		items := adapter.ExtractItems(galleryPage, base)

		assert.Equal(t, []string{
			"https://example.com/s/aaa/1-1",
			"https://example.com/s/bbb/1-2",
			"https://example.com/s/ccc/1-3",
		}, items)
	})

	t.Run("returns nil when the item collection is missing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, adapter.ExtractItems("<html><body></body></html>", base))
	})
}

func TestAdapter_ExtractNextPageURL(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewAdapter(goquery.DefaultMarkers())

	t.Run("returns the forward link by glyph", func(t *testing.T) {
		t.Parallel()

		next := adapter.ExtractNextPageURL(galleryPage, base)
		assert.Equal(t, "https://example.com/g/1/a/?p=1", next)
	})

	t.Run("empty on the last page", func(t *testing.T) {
		t.Parallel()

		lastPage := `<table class="ptt"><tr>
			<td><a href="?p=0">&lt;</a></td>
			<td><a href="?p=1">2</a></td>
		</tr></table>`
		assert.Empty(t, adapter.ExtractNextPageURL(lastPage, base))
	})

	t.Run("empty when the pagination control is missing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, adapter.ExtractNextPageURL("<html></html>", base))
	})
}

func TestAdapter_ExtractTotalPages(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewAdapter(goquery.DefaultMarkers())

	tests := []struct {
		name string
		html string
		hint int
		want int
	}{
		{
			name: "caption divided by hint, ceiling",
			html: `<p class="gpc">Showing 1 - 20 of 57 images</p>`,
			hint: 20,
			want: 3,
		},
		{
			name: "caption with thousands separator",
			html: `<p class="gpc">Showing 1 - 40 of 1,234 images</p>`,
			hint: 40,
			want: 31,
		},
		{
			name: "non-positive hint falls back to the default per-page count",
			html: `<p class="gpc">Showing 1 - 20 of 57 images</p>`,
			hint: 0,
			want: 3,
		},
		{
			name: "no caption uses highest pagination link",
			html: `<table class="ptt"><tr><td><a>1</a></td><td><a>5</a></td><td><a>&gt;</a></td></tr></table>`,
			hint: 20,
			want: 5,
		},
		{
			name: "neither caption nor pagination degrades to one",
			html: `<html><body></body></html>`,
			hint: 20,
			want: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, adapter.ExtractTotalPages(tt.html, tt.hint))
		})
	}
}
