package mock

import (
	"context"

	"github.com/leovikii/gread"
)

var _ gread.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of gread.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, itemURL string) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, itemURL string) (string, error) {
	return r.ResolveFn(ctx, itemURL)
}
