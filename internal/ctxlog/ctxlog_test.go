package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algoviz/internal/ctxlog"
)

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctxlog.FromContext(ctx).Info("hello", "k", 1)

	assert.Same(t, logger, ctxlog.FromContext(ctx))
	assert.Contains(t, buf.String(), "hello")
}

func TestWithLogger_NilKeepsContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, ctxlog.WithLogger(ctx, nil))
}
