// Package control implements the navigation-control model: the page
// counters, bounded prev/next jumps, validated direct page entry, and
// the preference toggles. It holds no rendering; a frontend projects
// its state and feeds it user input.
package control

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leovikii/gread"
)

// Session is the part of the aggregation engine the control reads and
// steers.
type Session interface {
	Gallery() *gread.Gallery
	CurrentPage() int
	TotalPages() int
	SetAutoAdvance(on bool)
}

// Control models the floating navigation control. Toggle methods
// persist the changed preference immediately; the new value applies
// for the rest of the session.
type Control struct {
	session Session
	prefs   gread.PreferenceService
}

// New creates a Control over the session. The preference service is
// required; toggles without persistence would silently reset on the
// next load.
func New(session Session, prefs gread.PreferenceService) (*Control, error) {
	if session == nil || prefs == nil {
		return nil, gread.Errorf(gread.EINVALID, "control requires a session and a preference service")
	}
	return &Control{session: session, prefs: prefs}, nil
}

// Counters returns the current and total page counts for display.
func (c *Control) Counters() (current, total int) {
	return c.session.CurrentPage(), c.session.TotalPages()
}

// CanPrev reports whether a previous page exists. The affordance is
// disabled on the first page.
func (c *Control) CanPrev() bool {
	return c.session.CurrentPage() > 1
}

// CanNext reports whether a further page exists. The affordance is
// disabled on the last page.
func (c *Control) CanNext() bool {
	return c.session.CurrentPage() < c.session.TotalPages()
}

// PrevURL returns the jump target for the previous page, or "" when
// already on the first page.
func (c *Control) PrevURL() string {
	if !c.CanPrev() {
		return ""
	}
	u, err := c.JumpURL(c.session.CurrentPage() - 1)
	if err != nil {
		return ""
	}
	return u
}

// NextURL returns the jump target for the next page, or "" when
// already on the last page.
func (c *Control) NextURL() string {
	if !c.CanNext() {
		return ""
	}
	u, err := c.JumpURL(c.session.CurrentPage() + 1)
	if err != nil {
		return ""
	}
	return u
}

// JumpURL builds the gallery URL for a 1-based page number by
// rewriting the zero-based "p" query parameter. The first page drops
// the parameter entirely, matching the gallery's own links. Pages
// outside [1, TotalPages] are invalid.
func (c *Control) JumpURL(page int) (string, error) {
	if page < 1 || page > c.session.TotalPages() {
		return "", gread.Errorf(gread.EINVALID, "page %d out of range [1, %d]", page, c.session.TotalPages())
	}
	u, err := url.Parse(c.session.Gallery().URL)
	if err != nil {
		return "", gread.Errorf(gread.EINTERNAL, "invalid gallery URL: %v", err)
	}
	q := u.Query()
	if page == 1 {
		q.Del("p")
	} else {
		q.Set("p", strconv.Itoa(page-1))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// EnterPage handles direct page-number entry. Invalid or out-of-range
// input is silently discarded: ok is false and the control reverts to
// display mode.
func (c *Control) EnterPage(input string) (jumpURL string, ok bool) {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return "", false
	}
	jumpURL, err = c.JumpURL(page)
	if err != nil {
		return "", false
	}
	return jumpURL, true
}

// ToggleAutoAdvance flips scroll-triggered page advancing, applies it
// to the running session, and persists it. Returns the new state.
func (c *Control) ToggleAutoAdvance(ctx context.Context) (bool, error) {
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return false, err
	}
	prefs.AutoAdvance = !prefs.AutoAdvance
	if err := c.prefs.SavePreferences(ctx, prefs); err != nil {
		return false, err
	}
	c.session.SetAutoAdvance(prefs.AutoAdvance)
	return prefs.AutoAdvance, nil
}

// ToggleControlVisibility flips the floating control's visibility and
// persists it. Returns the new state.
func (c *Control) ToggleControlVisibility(ctx context.Context) (bool, error) {
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return false, err
	}
	prefs.ShowControl = !prefs.ShowControl
	if err := c.prefs.SavePreferences(ctx, prefs); err != nil {
		return false, err
	}
	return prefs.ShowControl, nil
}

// ToggleReadingMode switches between continuous and single-item
// reading and persists the choice. Returns the new mode.
func (c *Control) ToggleReadingMode(ctx context.Context) (gread.ReadingMode, error) {
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return "", err
	}
	if prefs.ReadingMode == gread.ModeContinuous {
		prefs.ReadingMode = gread.ModeSingle
	} else {
		prefs.ReadingMode = gread.ModeContinuous
	}
	if err := c.prefs.SavePreferences(ctx, prefs); err != nil {
		return "", err
	}
	return prefs.ReadingMode, nil
}

// ToggleAutoEnterSingle flips whether the single-item viewer opens on
// load and persists it. Returns the new state.
func (c *Control) ToggleAutoEnterSingle(ctx context.Context) (bool, error) {
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return false, err
	}
	prefs.AutoEnterSingle = !prefs.AutoEnterSingle
	if err := c.prefs.SavePreferences(ctx, prefs); err != nil {
		return false, err
	}
	return prefs.AutoEnterSingle, nil
}

// ToggleAutoPlay flips the viewer's auto-play and persists it.
// Returns the new state.
func (c *Control) ToggleAutoPlay(ctx context.Context) (bool, error) {
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return false, err
	}
	prefs.AutoPlay = !prefs.AutoPlay
	if err := c.prefs.SavePreferences(ctx, prefs); err != nil {
		return false, err
	}
	return prefs.AutoPlay, nil
}

// SetAutoPlayInterval stores a new auto-play interval. The interval
// must be positive.
func (c *Control) SetAutoPlayInterval(ctx context.Context, millis int) error {
	if millis <= 0 {
		return gread.Errorf(gread.EINVALID, "auto-play interval must be positive")
	}
	prefs, err := c.prefs.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	prefs.AutoPlayInterval = time.Duration(millis) * time.Millisecond
	return c.prefs.SavePreferences(ctx, prefs)
}
