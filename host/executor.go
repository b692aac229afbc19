package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/hostfuncs"
	uiwazero "github.com/q3ui/uibridge/infrastructure/wazero"
	"github.com/q3ui/uibridge/wireformat"
)

// Executor manages the lifecycle of wasm UI modules.
type Executor struct {
	runtime          wazero.Runtime
	registry         *hostfuncs.HandlerRegistry
	logger           *slog.Logger
	stderr           io.Writer
	memoryLimitPages uint32
	loaded           atomic.Int32
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		logger: slog.Default(),
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}

	// Default registry if not provided
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(hostfuncs.WithLogger(e.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	cfg := wazero.NewRuntimeConfig()
	if e.memoryLimitPages > 0 {
		cfg = cfg.WithMemoryLimitPages(e.memoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, cfg)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := uiwazero.RegisterWithRuntime(ctx, rt, e.registry); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register syscall: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor and every instance.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Instance is one instantiated UI module.
type Instance struct {
	module   api.Module
	dllEntry api.Function
	vmMain   api.Function
	logger   *slog.Logger
}

// Load instantiates a UI module. The module must export dllEntry and vmMain;
// a wasip1 reactor's _initialize runs before Load returns.
func (e *Executor) Load(ctx context.Context, wasmBytes []byte) (*Instance, error) {
	cfg := wazero.NewModuleConfig().
		WithName(fmt.Sprintf("ui%d", e.loaded.Add(1))).
		WithStartFunctions().
		WithStderr(e.stderr)

	mod, err := e.runtime.InstantiateWithConfig(ctx, wasmBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			_ = mod.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	inst := &Instance{
		module:   mod,
		dllEntry: mod.ExportedFunction("dllEntry"),
		vmMain:   mod.ExportedFunction("vmMain"),
		logger:   e.logger,
	}
	for name, fn := range map[string]api.Function{"dllEntry": inst.dllEntry, "vmMain": inst.vmMain} {
		if fn == nil {
			_ = mod.Close(ctx)
			return nil, fmt.Errorf("module does not export %q", name)
		}
	}
	return inst, nil
}

// DLLEntry runs the module's load hook. The capability itself is the
// env.syscall import, so the pointer argument is 0.
func (i *Instance) DLLEntry(ctx context.Context) error {
	if _, err := i.dllEntry.Call(ctx, 0); err != nil {
		return fmt.Errorf("dllEntry: %w", err)
	}
	return nil
}

// VMMain sends one typed command to the module.
func (i *Instance) VMMain(ctx context.Context, cmd entities.Command) (int32, error) {
	opcode, args := wireformat.Encode(cmd)
	return i.Call(ctx, opcode, args)
}

// Call sends a raw vmMain call, opcode and arguments unchecked.
func (i *Instance) Call(ctx context.Context, opcode int32, args wireformat.Args) (int32, error) {
	params := make([]uint64, 1+len(args))
	params[0] = api.EncodeI32(opcode)
	for n, a := range args {
		params[n+1] = api.EncodeI32(a)
	}

	results, err := i.vmMain.Call(ctx, params...)
	if err != nil {
		i.logger.Debug("vmMain failed", "op", entities.Export(opcode).String(), "error", err)
		return 0, fmt.Errorf("vmMain %s: %w", entities.Export(opcode), err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return api.DecodeI32(results[0]), nil
}

// Memory returns the module's linear memory.
func (i *Instance) Memory() uiwazero.Memory {
	return uiwazero.NewMemory(i.module.Memory())
}

// Close releases the module.
func (i *Instance) Close(ctx context.Context) error {
	return i.module.Close(ctx)
}
