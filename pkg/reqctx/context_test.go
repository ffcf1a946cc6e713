package reqctx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "rid-1", ClientIP: "10.0.0.1"})
	meta, ok := RequestMetaFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.1", meta.ClientIP)
	assert.Equal(t, "rid-1", RequestIDFromContext(ctx))
}

func TestNilMetaIsAbsent(t *testing.T) {
	ctx := WithRequestMeta(context.Background(), nil)
	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)
}

func TestLogAttrs(t *testing.T) {
	assert.Empty(t, LogAttrs(context.Background()))

	ctx := WithRequestMeta(context.Background(), &RequestMeta{RequestID: "rid-1"})
	ctx = WithTrace(ctx, &TraceInfo{TraceID: "4bf92f3577b34da6a3ce929d0e0e4736"})

	assert.Equal(t, []any{
		slog.String("request_id", "rid-1"),
		slog.String("trace_id", "4bf92f3577b34da6a3ce929d0e0e4736"),
	}, LogAttrs(ctx))
}
