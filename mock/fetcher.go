package mock

import (
	"context"

	"github.com/leovikii/gread"
)

var _ gread.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gread.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ gread.Warmer = (*Warmer)(nil)

// Warmer is a mock implementation of gread.Warmer.
type Warmer struct {
	WarmFn func(ctx context.Context, imageURL string) error
}

func (w *Warmer) Warm(ctx context.Context, imageURL string) error {
	return w.WarmFn(ctx, imageURL)
}

var _ gread.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of gread.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
