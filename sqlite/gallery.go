package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/leovikii/gread"
)

// Compile-time interface verification.
var _ gread.GalleryStatService = (*GalleryStatService)(nil)

// GalleryStatService implements gread.GalleryStatService using SQLite.
type GalleryStatService struct {
	db *DB
}

// NewGalleryStatService creates a new GalleryStatService.
func NewGalleryStatService(db *DB) *GalleryStatService {
	return &GalleryStatService{db: db}
}

// FindTotalPages retrieves the cached total page count for a gallery.
func (s *GalleryStatService) FindTotalPages(ctx context.Context, galleryKey string) (int, error) {
	var total int

	err := s.db.QueryRowContext(ctx, `
		SELECT total_pages FROM galleries WHERE key = ?
	`, galleryKey).Scan(&total)

	if err == sql.ErrNoRows {
		return 0, gread.Errorf(gread.ENOTFOUND, "no stats for gallery")
	}
	if err != nil {
		return 0, err
	}

	return total, nil
}

// SaveTotalPages stores the total page count for a gallery. The value
// is monotonic: a smaller total never replaces a larger one, so a
// stale page whose heuristic undercounts cannot shrink the cache.
func (s *GalleryStatService) SaveTotalPages(ctx context.Context, galleryKey string, totalPages int) error {
	if totalPages < 1 {
		return gread.Errorf(gread.EINVALID, "total pages must be at least 1")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO galleries (key, total_pages, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			total_pages = MAX(total_pages, excluded.total_pages),
			updated_at = excluded.updated_at
	`, galleryKey, totalPages, time.Now().UTC().Format(time.RFC3339))

	return err
}
