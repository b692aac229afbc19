package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/host"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/internal/testutil"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpen_InProcess(t *testing.T) {
	ctx := context.Background()
	mod, err := open(ctx, config.Defaults(), hostfuncs.NewEngine(), quiet)
	require.NoError(t, err)
	defer mod.Close(ctx)

	assert.IsType(t, &host.Local{}, mod)
}

func TestOpen_WasmModule(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "echo.wasm")
	require.NoError(t, os.WriteFile(path, testutil.EchoModule(), 0o600))

	cfg := config.Defaults()
	cfg.Host.Module = path
	mod, err := open(ctx, cfg, hostfuncs.NewEngine(), quiet)
	require.NoError(t, err)
	defer mod.Close(ctx)

	require.NoError(t, mod.DLLEntry(ctx))
	got, err := mod.VMMain(ctx, entities.GetAPIVersion{})
	require.NoError(t, err)
	assert.Equal(t, int32(6), got)
}

func TestOpen_MissingModule(t *testing.T) {
	cfg := config.Defaults()
	cfg.Host.Module = filepath.Join(t.TempDir(), "missing.wasm")

	_, err := open(context.Background(), cfg, hostfuncs.NewEngine(), quiet)
	assert.ErrorContains(t, err, "failed to read module")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uihost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host:\n  prompt: \"q3> \"\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "q3> ", cfg.Host.Prompt)

	t.Setenv(config.EnvVar, "")
	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "ui> ", cfg.Host.Prompt)
}

func TestOpen_TracesSyscalls(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx := context.Background()
	cfg := config.Defaults()
	cfg.Tracing.Enabled = true
	mod, err := open(ctx, cfg, hostfuncs.NewEngine(), quiet)
	require.NoError(t, err)
	defer mod.Close(ctx)

	require.NoError(t, mod.DLLEntry(ctx))
	_, err = mod.VMMain(ctx, entities.Init{})
	require.NoError(t, err)

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.Contains(t, names, "UI_CVAR_CREATE")
	assert.Contains(t, names, "UI_PRINT")
}
