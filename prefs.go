package gread

import (
	"context"
	"time"
)

// ReadingMode selects how the reader presents items.
type ReadingMode string

// Reading modes.
const (
	ModeContinuous ReadingMode = "continuous" // endless scrolling document
	ModeSingle     ReadingMode = "single"     // one item at a time
)

// Preferences are the user settings that survive across page loads.
type Preferences struct {
	AutoAdvance      bool          `json:"autoAdvance"`      // scroll-triggered page advance
	ShowControl      bool          `json:"showControl"`      // floating control visibility
	ReadingMode      ReadingMode   `json:"readingMode"`
	AutoEnterSingle  bool          `json:"autoEnterSingle"`  // open the single-item viewer on load
	AutoPlay         bool          `json:"autoPlay"`         // viewer auto-advance
	AutoPlayInterval time.Duration `json:"autoPlayInterval"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		AutoAdvance:      false,
		ShowControl:      true,
		ReadingMode:      ModeContinuous,
		AutoEnterSingle:  false,
		AutoPlay:         false,
		AutoPlayInterval: 3 * time.Second,
	}
}

// Validate returns an error if the preferences contain invalid fields.
func (p *Preferences) Validate() error {
	switch p.ReadingMode {
	case ModeContinuous, ModeSingle:
	default:
		return Errorf(EINVALID, "unknown reading mode %q", p.ReadingMode)
	}
	if p.AutoPlayInterval <= 0 {
		return Errorf(EINVALID, "auto-play interval must be positive")
	}
	return nil
}

// PreferenceService persists user preferences. Loading with nothing
// stored yields the defaults.
type PreferenceService interface {
	LoadPreferences(ctx context.Context) (*Preferences, error)
	SavePreferences(ctx context.Context, prefs *Preferences) error
}

// GalleryStatService caches per-gallery statistics across reloads,
// keyed by gallery identity.
type GalleryStatService interface {
	// FindTotalPages returns the cached total page count.
	// Returns ENOTFOUND if no value has been cached for the gallery.
	FindTotalPages(ctx context.Context, galleryKey string) (int, error)

	// SaveTotalPages stores the total page count. The stored value is
	// monotonic: a smaller total never replaces a larger one.
	SaveTotalPages(ctx context.Context, galleryKey string, totalPages int) error
}
