// Package tracing installs the OpenTelemetry tracer provider used by the
// reference host.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/q3ui/uibridge/application/config"
)

// Name is the instrumentation scope of every span the bridge starts.
const Name = "github.com/q3ui/uibridge"

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

// Setup installs the global tracer provider described by cfg and returns
// its shutdown function. Spans of the stdout exporter go to w.
// When tracing is disabled a noop provider is installed.
func Setup(ctx context.Context, cfg config.TracingConfig, w io.Writer) (Shutdown, error) {
	noopShutdown := func(context.Context) error { return nil }

	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return noopShutdown, nil
	}

	var exporter sdktrace.SpanExporter
	switch cfg.Exporter {
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		exporter = exp
	case "noop", "":
		otel.SetTracerProvider(noop.NewTracerProvider())
		return noopShutdown, nil
	default:
		return nil, fmt.Errorf("unsupported exporter: %s", cfg.Exporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the bridge's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(Name)
}
