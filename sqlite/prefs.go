package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/leovikii/gread"
)

// Compile-time interface verification.
var _ gread.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements gread.PreferenceService using SQLite.
// Preferences are a singleton row; loading before anything was saved
// returns the defaults.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// LoadPreferences retrieves the stored preferences, or the defaults if
// nothing has been saved yet.
func (s *PreferenceService) LoadPreferences(ctx context.Context) (*gread.Preferences, error) {
	var (
		autoAdvance, showControl, autoEnterSingle, autoPlay int
		readingMode                                         string
		intervalMillis                                      int64
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT auto_advance, show_control, reading_mode, auto_enter_single, auto_play, auto_play_interval_ms
		FROM preferences
		WHERE id = 1
	`).Scan(&autoAdvance, &showControl, &readingMode, &autoEnterSingle, &autoPlay, &intervalMillis)

	if err == sql.ErrNoRows {
		prefs := gread.DefaultPreferences()
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}

	prefs := &gread.Preferences{
		AutoAdvance:      autoAdvance != 0,
		ShowControl:      showControl != 0,
		ReadingMode:      gread.ReadingMode(readingMode),
		AutoEnterSingle:  autoEnterSingle != 0,
		AutoPlay:         autoPlay != 0,
		AutoPlayInterval: time.Duration(intervalMillis) * time.Millisecond,
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SavePreferences stores the preferences, replacing any previous ones.
func (s *PreferenceService) SavePreferences(ctx context.Context, prefs *gread.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (id, auto_advance, show_control, reading_mode, auto_enter_single, auto_play, auto_play_interval_ms, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			auto_advance = excluded.auto_advance,
			show_control = excluded.show_control,
			reading_mode = excluded.reading_mode,
			auto_enter_single = excluded.auto_enter_single,
			auto_play = excluded.auto_play,
			auto_play_interval_ms = excluded.auto_play_interval_ms,
			updated_at = excluded.updated_at
	`, boolToInt(prefs.AutoAdvance), boolToInt(prefs.ShowControl), string(prefs.ReadingMode),
		boolToInt(prefs.AutoEnterSingle), boolToInt(prefs.AutoPlay), prefs.AutoPlayInterval.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339))

	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
