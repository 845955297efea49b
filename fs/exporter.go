// Package fs provides file-based export of aggregated galleries.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leovikii/gread"
)

// Exporter writes an aggregated gallery's resolved image list to disk
// with atomic update semantics: content is written to a temporary file
// and renamed into place, so readers never observe a partial export.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter rooted at dir. The directory is
// created on the first export.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes the gallery's resolved image URLs, one per line, to
// <dir>/<gallery key>.urls and returns the final path. Unresolved and
// failed items are skipped.
func (e *Exporter) Export(gallery *gread.Gallery, items []gread.Item) (string, error) {
	if gallery == nil {
		return "", gread.Errorf(gread.EINVALID, "export requires a gallery")
	}
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", err
	}

	finalPath := filepath.Join(e.dir, gallery.Key+".urls")
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, []byte(FormatManifest(gallery, items)), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return finalPath, nil
}

// FormatManifest formats the export: a comment header identifying the
// gallery, then the resolved image URLs in gallery order.
func FormatManifest(gallery *gread.Gallery, items []gread.Item) string {
	var b strings.Builder
	b.WriteString("# gallery: ")
	b.WriteString(gallery.URL)
	b.WriteString("\n# exported: ")
	b.WriteString(time.Now().UTC().Format("2006-01-02"))
	b.WriteString("\n")
	for _, item := range items {
		if item.State != gread.ItemResolved {
			continue
		}
		b.WriteString(item.ImageSrc)
		b.WriteString("\n")
	}
	return b.String()
}
