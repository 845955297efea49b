package goquery_test

import (
	"testing"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageExtractor_ExtractImageSource(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewImageExtractor(goquery.DefaultMarkers())

	t.Run("returns the resolved image source", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img id="img" src="//cdn.example.com/full/1.jpg"></body></html>`
		src, err := extractor.ExtractImageSource(html, "https://example.com/s/aaa/1-1")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/full/1.jpg", src)
	})

	t.Run("not found when the element is absent", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractImageSource("<html><body></body></html>", "https://example.com/s/aaa/1-1")
		assert.Equal(t, gread.ENOTFOUND, gread.ErrorCode(err))
	})

	t.Run("not found when the source attribute is empty", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractImageSource(`<img id="img" src="">`, "https://example.com/s/aaa/1-1")
		assert.Equal(t, gread.ENOTFOUND, gread.ErrorCode(err))
	})
}
