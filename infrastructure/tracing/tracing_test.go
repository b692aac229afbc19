package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/q3ui/uibridge/application/config"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{Exporter: "stdout"}, nil)
	require.NoError(t, err)
	defer shutdown(context.Background())

	_, ok := otel.GetTracerProvider().(noop.TracerProvider)
	assert.True(t, ok, "got %T", otel.GetTracerProvider())
}

func TestSetup_NoopExporter(t *testing.T) {
	for _, exporter := range []string{"noop", ""} {
		shutdown, err := Setup(context.Background(), config.TracingConfig{Enabled: true, Exporter: exporter}, nil)
		require.NoError(t, err, exporter)
		require.NoError(t, shutdown(context.Background()))

		_, ok := otel.GetTracerProvider().(noop.TracerProvider)
		assert.True(t, ok, exporter)
	}
}

func TestSetup_Stdout(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Setup(context.Background(), config.TracingConfig{Enabled: true, Exporter: "stdout"}, &buf)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "UI_PRINT")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "UI_PRINT"`)
	assert.Contains(t, buf.String(), Name)
}

func TestSetup_UnsupportedExporter(t *testing.T) {
	_, err := Setup(context.Background(), config.TracingConfig{Enabled: true, Exporter: "jaeger"}, nil)
	assert.ErrorContains(t, err, "unsupported exporter")
}
