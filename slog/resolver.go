package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/leovikii/gread"
)

// Ensure LoggingResolver implements gread.Resolver.
var _ gread.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with per-item logging.
type LoggingResolver struct {
	next   gread.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next gread.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver, logging the item URL, the
// resolved image source and duration, or the error on exhaustion.
func (r *LoggingResolver) Resolve(ctx context.Context, itemURL string) (string, error) {
	begin := time.Now()
	src, err := r.next.Resolve(ctx, itemURL)
	if err != nil {
		r.logger.Error("resolve",
			"item", itemURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	r.logger.Info("resolve",
		"item", itemURL,
		"src", src,
		"duration", time.Since(begin),
	)
	return src, nil
}
