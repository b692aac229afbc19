// Command uihost is an interactive stand-in for the engine. It loads the UI,
// either a wasm module or the built-in menu in process, and turns console
// lines into vmMain calls.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/application/menu"
	"github.com/q3ui/uibridge/application/schema"
	"github.com/q3ui/uibridge/domain/ports"
	"github.com/q3ui/uibridge/host"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/infrastructure/tracing"
	"github.com/q3ui/uibridge/syscalls"
)

func main() {
	var (
		modulePath string
		configPath string
		showSchema bool
	)
	flag.StringVar(&modulePath, "module", "", "wasm UI module to load (default: the built-in menu, in process)")
	flag.StringVar(&configPath, "config", "", "config file (default: $"+config.EnvVar+")")
	flag.BoolVar(&showSchema, "schema", false, "print the config JSON schema and exit")
	flag.Parse()

	if err := run(context.Background(), modulePath, configPath, showSchema); err != nil {
		fmt.Fprintln(os.Stderr, "uihost:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, modulePath, configPath string, showSchema bool) error {
	if showSchema {
		data, err := schema.ConfigSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(data))
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if modulePath != "" {
		cfg.Host.Module = modulePath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.Log.SlogLevel(),
		AddSource: cfg.Log.Source,
	}))

	shutdown, err := tracing.Setup(ctx, cfg.Tracing, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("failed to flush spans", "error", err)
		}
	}()

	var out io.Writer = os.Stdout
	if cfg.Host.Color {
		out = colorWriter{w: os.Stdout}
	}
	scroll := hostfuncs.NewScrollback(hostfuncs.DefaultScrollback)
	engine := hostfuncs.NewEngine(hostfuncs.WithConsole(io.MultiWriter(out, scroll)))
	mod, err := open(ctx, cfg, engine, logger)
	if err != nil {
		return err
	}
	defer mod.Close(ctx)

	if err := mod.DLLEntry(ctx); err != nil {
		return err
	}
	return repl(ctx, cfg.Host, &console{mod: mod, engine: engine, scroll: scroll, out: out})
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}

// open builds the engine's syscall table and loads the UI against it.
func open(ctx context.Context, cfg *config.Config, engine *hostfuncs.Engine, logger *slog.Logger) (host.Module, error) {
	opts := []hostfuncs.RegistryOption{
		hostfuncs.WithLogger(logger),
		hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware(logger)),
		hostfuncs.WithBundle(hostfuncs.AllBundles(engine)),
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, hostfuncs.WithMiddleware(hostfuncs.TracingMiddleware(tracing.Tracer())))
	}
	if cfg.Dispatch.Trace {
		opts = append(opts, hostfuncs.WithMiddleware(hostfuncs.LoggingMiddleware(logger)))
	}
	registry, err := hostfuncs.NewRegistry(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Host.Module == "" {
		logger.Info("running built-in menu in process")
		return host.NewLocal(registry, func(b *syscalls.Bridge) ports.UI {
			return menu.New(b, menu.WithLogger(logger))
		}, host.WithDispatch(cfg.Dispatch), host.WithLocalLogger(logger)), nil
	}

	wasm, err := os.ReadFile(cfg.Host.Module)
	if err != nil {
		return nil, fmt.Errorf("failed to read module: %w", err)
	}
	exec, err := host.NewExecutor(ctx,
		host.WithRegistry(registry),
		host.WithMemoryLimitPages(cfg.Host.MemoryLimitPages),
		host.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	inst, err := exec.Load(ctx, wasm)
	if err != nil {
		_ = exec.Close(ctx)
		return nil, err
	}
	logger.Info("loaded wasm module", "path", cfg.Host.Module, "bytes", len(wasm))
	return &loaded{Instance: inst, exec: exec}, nil
}

// loaded closes the executor along with its only instance.
type loaded struct {
	*host.Instance
	exec *host.Executor
}

func (l *loaded) Close(ctx context.Context) error {
	return l.exec.Close(ctx)
}
