package mock

import (
	"context"

	"github.com/leovikii/gread"
)

var _ gread.PreferenceService = (*PreferenceService)(nil)

// PreferenceService is a mock implementation of gread.PreferenceService.
type PreferenceService struct {
	LoadPreferencesFn func(ctx context.Context) (*gread.Preferences, error)
	SavePreferencesFn func(ctx context.Context, prefs *gread.Preferences) error
}

func (s *PreferenceService) LoadPreferences(ctx context.Context) (*gread.Preferences, error) {
	return s.LoadPreferencesFn(ctx)
}

func (s *PreferenceService) SavePreferences(ctx context.Context, prefs *gread.Preferences) error {
	return s.SavePreferencesFn(ctx, prefs)
}

var _ gread.GalleryStatService = (*GalleryStatService)(nil)

// GalleryStatService is a mock implementation of gread.GalleryStatService.
type GalleryStatService struct {
	FindTotalPagesFn func(ctx context.Context, galleryKey string) (int, error)
	SaveTotalPagesFn func(ctx context.Context, galleryKey string, totalPages int) error
}

func (s *GalleryStatService) FindTotalPages(ctx context.Context, galleryKey string) (int, error) {
	return s.FindTotalPagesFn(ctx, galleryKey)
}

func (s *GalleryStatService) SaveTotalPages(ctx context.Context, galleryKey string, totalPages int) error {
	return s.SaveTotalPagesFn(ctx, galleryKey, totalPages)
}
