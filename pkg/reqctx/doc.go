// Package reqctx provides centralized request context management.
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    RequestedAt: time.Now(),
//	})
//
// Getting values (in handlers and services):
//
//	rid := reqctx.RequestIDFromContext(ctx)
//	slog.InfoContext(ctx, "appointment created", append(reqctx.LogAttrs(ctx), "id", id)...)
//
// The following contracts are guaranteed:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - TraceInfo is set when distributed tracing is enabled
package reqctx
