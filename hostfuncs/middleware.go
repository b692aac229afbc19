package hostfuncs

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/q3ui/uibridge/domain/errors"
)

// Middleware is a function that wraps a Handler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
//
// Example usage:
//
//	counting := func(next Handler) Handler {
//	    return func(ctx context.Context, call Call) uintptr {
//	        calls[call.Op]++
//	        return next(ctx, call)
//	    }
//	}
type Middleware func(next Handler) Handler

// PanicRecoveryMiddleware returns a middleware that turns a panicking handler
// into a logged error and a 0 result. A *HostAbort is passed through, since
// unwinding is its purpose.
func PanicRecoveryMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) (result uintptr) {
			defer func() {
				if r := recover(); r != nil {
					if isAbort(r) {
						panic(r)
					}
					logger.Error("ui import handler panicked", "op", call.Op.String(), "panic", errors.Describe(r))
					result = 0
				}
			}()
			return next(ctx, call)
		}
	}
}

func isAbort(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	var abort *HostAbort
	return stdErrors.As(err, &abort)
}

// LoggingMiddleware returns a middleware that logs every syscall at debug
// level. Inside TracingMiddleware the record carries the span's ids.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) uintptr {
			result := next(ctx, call)
			attrs := []any{"op", call.Op.String(), "args", call.Args, "result", int32(result)}
			if sc := SpanFrom(ctx).SpanContext(); sc.IsValid() {
				attrs = append(attrs, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
			}
			logger.Debug("ui import", attrs...)
			return result
		}
	}
}

// TracingMiddleware returns a middleware that wraps every syscall in a span
// named after its import. A panicking handler marks the span as failed
// before the panic continues. The handler keeps the HostContext it was
// given, so the span has no children; later middleware finds the span with
// SpanFrom.
func TracingMiddleware(tracer trace.Tracer) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call Call) (result uintptr) {
			_, span := tracer.Start(ctx, call.Op.String(), trace.WithAttributes(
				attribute.Int("ui.import", int(call.Op)),
				attribute.Int("ui.argc", len(call.Args)),
			))
			if hc, ok := ctx.(HostContext); ok {
				hc.SetValue(spanKey{}, span)
			}
			defer func() {
				if r := recover(); r != nil {
					span.SetStatus(codes.Error, errors.Describe(r))
					if err, ok := r.(error); ok {
						span.RecordError(err)
					}
					span.End()
					panic(r)
				}
				span.SetAttributes(attribute.Int("ui.result", int(int32(result))))
				span.SetStatus(codes.Ok, "")
				span.End()
			}()
			return next(ctx, call)
		}
	}
}

type spanKey struct{}

// SpanFrom returns the span TracingMiddleware opened for the current call,
// or a non-recording span outside it.
func SpanFrom(ctx context.Context) trace.Span {
	if span, ok := ctx.Value(spanKey{}).(trace.Span); ok {
		return span
	}
	return trace.SpanFromContext(ctx)
}
