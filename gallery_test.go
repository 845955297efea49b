package gread_test

import (
	"testing"

	"github.com/leovikii/gread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGallery(t *testing.T) {
	t.Parallel()

	t.Run("same path maps to same key regardless of page offset", func(t *testing.T) {
		t.Parallel()

		a, err := gread.NewGallery("https://example.com/g/12345/abcdef/")
		require.NoError(t, err)
		b, err := gread.NewGallery("https://example.com/g/12345/abcdef/?p=3")
		require.NoError(t, err)

		assert.Equal(t, a.Key, b.Key)
		assert.NotEmpty(t, a.Key)
	})

	t.Run("different galleries get different keys", func(t *testing.T) {
		t.Parallel()

		a, err := gread.NewGallery("https://example.com/g/12345/abcdef/")
		require.NoError(t, err)
		b, err := gread.NewGallery("https://example.com/g/67890/fedcba/")
		require.NoError(t, err)

		assert.NotEqual(t, a.Key, b.Key)
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := gread.NewGallery("/g/12345/abcdef/")
		assert.Equal(t, gread.EINVALID, gread.ErrorCode(err))
	})
}

func TestCurrentPageFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"no parameter means first page", "https://example.com/g/1/a/", 1},
		{"zero-based parameter is converted", "https://example.com/g/1/a/?p=2", 3},
		{"malformed parameter falls back", "https://example.com/g/1/a/?p=x", 1},
		{"negative parameter falls back", "https://example.com/g/1/a/?p=-1", 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gread.CurrentPageFromURL(tt.url))
		})
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	page := &gread.Page{Index: 0}
	assert.Equal(t, gread.EINVALID, gread.ErrorCode(page.Validate()))

	page.Index = 1
	assert.NoError(t, page.Validate())
}

func TestPreferences_Validate(t *testing.T) {
	t.Parallel()

	prefs := gread.DefaultPreferences()
	assert.NoError(t, prefs.Validate())

	prefs.ReadingMode = "sideways"
	assert.Equal(t, gread.EINVALID, gread.ErrorCode(prefs.Validate()))

	prefs = gread.DefaultPreferences()
	prefs.AutoPlayInterval = 0
	assert.Equal(t, gread.EINVALID, gread.ErrorCode(prefs.Validate()))
}

func TestItemState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pending", gread.ItemPending.String())
	assert.Equal(t, "loading", gread.ItemLoading.String())
	assert.Equal(t, "resolved", gread.ItemResolved.String())
	assert.Equal(t, "failed", gread.ItemFailed.String())
}
