package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/leovikii/gread/mock"
	greadslog "github.com/leovikii/gread/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs the resolved image source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(ctx context.Context, itemURL string) (string, error) {
				return "https://img.example.com/full/a.jpg", nil
			},
		}

		resolver := greadslog.NewLoggingResolver(inner, logger)
		src, err := resolver.Resolve(context.Background(), "https://example.com/s/a/1-1")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/full/a.jpg", src)
		output := buf.String()
		assert.Contains(t, output, "resolve")
		assert.Contains(t, output, "item=https://example.com/s/a/1-1")
		assert.Contains(t, output, "src=https://img.example.com/full/a.jpg")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on exhaustion", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(ctx context.Context, itemURL string) (string, error) {
				return "", errors.New("item page down")
			},
		}

		resolver := greadslog.NewLoggingResolver(inner, logger)
		_, err := resolver.Resolve(context.Background(), "https://example.com/s/a/1-1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "resolve")
		assert.Contains(t, output, "err=\"item page down\"")
	})
}
