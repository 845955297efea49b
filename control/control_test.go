package control_test

import (
	"context"
	"testing"
	"time"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/control"
	"github.com/leovikii/gread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession serves fixed counters and records auto-advance changes.
type fakeSession struct {
	gallery     *gread.Gallery
	current     int
	total       int
	autoAdvance bool
}

func (s *fakeSession) Gallery() *gread.Gallery { return s.gallery }
func (s *fakeSession) CurrentPage() int        { return s.current }
func (s *fakeSession) TotalPages() int         { return s.total }
func (s *fakeSession) SetAutoAdvance(on bool)  { s.autoAdvance = on }

// memPrefs is an in-memory preference store.
func memPrefs() *mock.PreferenceService {
	stored := gread.DefaultPreferences()
	return &mock.PreferenceService{
		LoadPreferencesFn: func(_ context.Context) (*gread.Preferences, error) {
			p := stored
			return &p, nil
		},
		SavePreferencesFn: func(_ context.Context, prefs *gread.Preferences) error {
			stored = *prefs
			return nil
		},
	}
}

func mustControl(t *testing.T, session control.Session, prefs gread.PreferenceService) *control.Control {
	t.Helper()
	c, err := control.New(session, prefs)
	require.NoError(t, err)
	return c
}

func mustGallery(t *testing.T, rawURL string) *gread.Gallery {
	t.Helper()
	g, err := gread.NewGallery(rawURL)
	require.NoError(t, err)
	return g
}

func TestControl_Counters(t *testing.T) {
	t.Parallel()

	c := mustControl(t, &fakeSession{current: 3, total: 7}, memPrefs())

	current, total := c.Counters()
	assert.Equal(t, 3, current)
	assert.Equal(t, 7, total)
}

func TestControl_Bounds(t *testing.T) {
	t.Parallel()

	t.Run("first page disables prev", func(t *testing.T) {
		t.Parallel()

		c := mustControl(t, &fakeSession{
			gallery: mustGallery(t, "https://example.com/g/1/a/"),
			current: 1, total: 5,
		}, memPrefs())

		assert.False(t, c.CanPrev())
		assert.True(t, c.CanNext())
		assert.Empty(t, c.PrevURL())
		assert.Equal(t, "https://example.com/g/1/a/?p=1", c.NextURL())
	})

	t.Run("last page disables next", func(t *testing.T) {
		t.Parallel()

		c := mustControl(t, &fakeSession{
			gallery: mustGallery(t, "https://example.com/g/1/a/?p=4"),
			current: 5, total: 5,
		}, memPrefs())

		assert.True(t, c.CanPrev())
		assert.False(t, c.CanNext())
		assert.Empty(t, c.NextURL())
		assert.Equal(t, "https://example.com/g/1/a/?p=3", c.PrevURL())
	})

	t.Run("single page disables both", func(t *testing.T) {
		t.Parallel()

		c := mustControl(t, &fakeSession{
			gallery: mustGallery(t, "https://example.com/g/1/a/"),
			current: 1, total: 1,
		}, memPrefs())

		assert.False(t, c.CanPrev())
		assert.False(t, c.CanNext())
	})
}

func TestControl_JumpURL(t *testing.T) {
	t.Parallel()

	session := &fakeSession{
		gallery: mustGallery(t, "https://example.com/g/1/a/?p=2"),
		current: 3, total: 9,
	}
	c := mustControl(t, session, memPrefs())

	t.Run("rewrites the zero-based page offset", func(t *testing.T) {
		t.Parallel()

		u, err := c.JumpURL(5)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/g/1/a/?p=4", u)
	})

	t.Run("first page drops the offset", func(t *testing.T) {
		t.Parallel()

		u, err := c.JumpURL(1)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/g/1/a/", u)
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := c.JumpURL(0)
		assert.Equal(t, gread.EINVALID, gread.ErrorCode(err))

		_, err = c.JumpURL(10)
		assert.Equal(t, gread.EINVALID, gread.ErrorCode(err))
	})
}

func TestControl_EnterPage(t *testing.T) {
	t.Parallel()

	c := mustControl(t, &fakeSession{
		gallery: mustGallery(t, "https://example.com/g/1/a/"),
		current: 1, total: 9,
	}, memPrefs())

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"valid entry", "5", "https://example.com/g/1/a/?p=4", true},
		{"whitespace tolerated", " 2 ", "https://example.com/g/1/a/?p=1", true},
		{"not a number", "five", "", false},
		{"out of range high", "10", "", false},
		{"out of range low", "0", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := c.EnterPage(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestControl_Toggles(t *testing.T) {
	t.Parallel()

	t.Run("auto-advance flips, persists, and applies to the session", func(t *testing.T) {
		t.Parallel()

		session := &fakeSession{current: 1, total: 1}
		prefs := memPrefs()
		c := mustControl(t, session, prefs)

		on, err := c.ToggleAutoAdvance(context.Background())
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, session.autoAdvance)

		stored, err := prefs.LoadPreferences(context.Background())
		require.NoError(t, err)
		assert.True(t, stored.AutoAdvance)

		on, err = c.ToggleAutoAdvance(context.Background())
		require.NoError(t, err)
		assert.False(t, on)
		assert.False(t, session.autoAdvance)
	})

	t.Run("control visibility flips and persists", func(t *testing.T) {
		t.Parallel()

		prefs := memPrefs()
		c := mustControl(t, &fakeSession{}, prefs)

		// ShowControl defaults to true.
		on, err := c.ToggleControlVisibility(context.Background())
		require.NoError(t, err)
		assert.False(t, on)

		stored, err := prefs.LoadPreferences(context.Background())
		require.NoError(t, err)
		assert.False(t, stored.ShowControl)
	})

	t.Run("reading mode alternates", func(t *testing.T) {
		t.Parallel()

		c := mustControl(t, &fakeSession{}, memPrefs())

		mode, err := c.ToggleReadingMode(context.Background())
		require.NoError(t, err)
		assert.Equal(t, gread.ModeSingle, mode)

		mode, err = c.ToggleReadingMode(context.Background())
		require.NoError(t, err)
		assert.Equal(t, gread.ModeContinuous, mode)
	})

	t.Run("auto-enter-single and auto-play flip and persist", func(t *testing.T) {
		t.Parallel()

		prefs := memPrefs()
		c := mustControl(t, &fakeSession{}, prefs)

		on, err := c.ToggleAutoEnterSingle(context.Background())
		require.NoError(t, err)
		assert.True(t, on)

		on, err = c.ToggleAutoPlay(context.Background())
		require.NoError(t, err)
		assert.True(t, on)

		stored, err := prefs.LoadPreferences(context.Background())
		require.NoError(t, err)
		assert.True(t, stored.AutoEnterSingle)
		assert.True(t, stored.AutoPlay)
	})

	t.Run("auto-play interval is validated and persisted", func(t *testing.T) {
		t.Parallel()

		prefs := memPrefs()
		c := mustControl(t, &fakeSession{}, prefs)

		require.NoError(t, c.SetAutoPlayInterval(context.Background(), 5000))

		stored, err := prefs.LoadPreferences(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, stored.AutoPlayInterval)

		err = c.SetAutoPlayInterval(context.Background(), 0)
		assert.Equal(t, gread.EINVALID, gread.ErrorCode(err))
	})
}

func TestControl_New(t *testing.T) {
	t.Parallel()

	_, err := control.New(nil, nil)
	assert.Equal(t, gread.EINVALID, gread.ErrorCode(err))
}
