// Package viewer implements the single-item reading mode: a cursor
// over the engine's ordered item list with next/prev/seek navigation,
// a near-end advance request, and an auto-play ticker.
package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/leovikii/gread"
)

// DefaultNearEndThreshold is how many unviewed items may remain before
// the viewer asks the session for the next page. Empirically tuned.
const DefaultNearEndThreshold = 3

// Session is the part of the aggregation engine the viewer drives. The
// viewer reads the authoritative item model through it; it never
// inspects rendered output.
type Session interface {
	// Items returns a snapshot of the ordered item list.
	Items() []gread.Item

	// Advance loads the next gallery page, if any.
	Advance(ctx context.Context) error

	// HasNext reports whether a further page is known to exist.
	HasNext() bool
}

// Config holds the viewer's collaborators and tunables.
type Config struct {
	Session Session

	// NearEndThreshold overrides DefaultNearEndThreshold when positive.
	NearEndThreshold int

	// AutoPlayInterval is the pause between auto-play steps.
	// Defaults to the DefaultPreferences interval.
	AutoPlayInterval time.Duration
}

// Viewer is a cursor over the session's item list. Methods are safe
// for concurrent use; the auto-play ticker shares the same cursor.
type Viewer struct {
	session   Session
	threshold int
	interval  time.Duration

	mu       sync.Mutex
	index    int
	stopPlay context.CancelFunc
	playing  sync.WaitGroup
}

// New creates a Viewer positioned on the first item.
func New(cfg Config) (*Viewer, error) {
	if cfg.Session == nil {
		return nil, gread.Errorf(gread.EINVALID, "viewer requires a session")
	}
	threshold := cfg.NearEndThreshold
	if threshold <= 0 {
		threshold = DefaultNearEndThreshold
	}
	interval := cfg.AutoPlayInterval
	if interval <= 0 {
		interval = gread.DefaultPreferences().AutoPlayInterval
	}
	return &Viewer{
		session:   cfg.Session,
		threshold: threshold,
		interval:  interval,
	}, nil
}

// Current returns the item under the cursor. ok is false while the
// session has no items yet.
func (v *Viewer) Current() (gread.Item, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	items := v.session.Items()
	if v.index < 0 || v.index >= len(items) {
		return gread.Item{}, false
	}
	return items[v.index], true
}

// Index returns the cursor position.
func (v *Viewer) Index() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.index
}

// Next moves the cursor forward by one. The move is refused when the
// next item has not resolved yet or no next item exists; a refusal is
// not an error, it reports moved=false and leaves the cursor in place.
// Nearing the end of the known items asks the session for the next
// page so the reader is not stalled.
func (v *Viewer) Next(ctx context.Context) (moved bool, err error) {
	v.mu.Lock()
	items := v.session.Items()
	target := v.index + 1
	if target < len(items) && items[target].State == gread.ItemResolved {
		v.index = target
		moved = true
	}
	remaining := len(items) - 1 - v.index
	nearEnd := remaining <= v.threshold
	v.mu.Unlock()

	if nearEnd && v.session.HasNext() {
		err = v.session.Advance(ctx)
	}
	return moved, err
}

// Prev moves the cursor back by one, refusing to move before the first
// item.
func (v *Viewer) Prev() (moved bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.index == 0 {
		return false
	}
	v.index--
	return true
}

// Seek maps a pointer position in [0,1] linearly onto the known item
// range and jumps the cursor there. Out-of-range positions clamp.
func (v *Viewer) Seek(pos float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	items := v.session.Items()
	if len(items) == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	v.index = int(pos*float64(len(items)-1) + 0.5)
}

// StartAutoPlay steps the cursor forward on a fixed interval until it
// reaches the last currently known item, the context is canceled, or
// StopAutoPlay is called. Reaching the last known item self-cancels;
// starting while already playing restarts the ticker.
func (v *Viewer) StartAutoPlay(ctx context.Context) {
	v.StopAutoPlay()

	ctx, cancel := context.WithCancel(ctx)
	v.mu.Lock()
	v.stopPlay = cancel
	v.mu.Unlock()

	v.playing.Add(1)
	go func() {
		defer v.playing.Done()
		defer cancel()
		ticker := time.NewTicker(v.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				moved, _ := v.Next(ctx)
				if !moved && v.atLastKnown() {
					return
				}
			}
		}
	}()
}

// StopAutoPlay cancels a running auto-play ticker and waits for it to
// exit. Safe to call when nothing is playing.
func (v *Viewer) StopAutoPlay() {
	v.mu.Lock()
	cancel := v.stopPlay
	v.stopPlay = nil
	v.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	v.playing.Wait()
}

func (v *Viewer) atLastKnown() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.index >= len(v.session.Items())-1
}
