package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/application/dispatch"
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/domain/ports"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/syscalls"
	"github.com/q3ui/uibridge/wireformat"
)

// Module is a loaded UI, either an Instance or a Local.
type Module interface {
	DLLEntry(ctx context.Context) error
	VMMain(ctx context.Context, cmd entities.Command) (int32, error)
	Call(ctx context.Context, opcode int32, args wireformat.Args) (int32, error)
	Close(ctx context.Context) error
}

// Compile-time interface compliance checks
var (
	_ Module = (*Instance)(nil)
	_ Module = (*Local)(nil)
)

// UIFactory builds the UI on top of the bridge it will call through.
type UIFactory func(bridge *syscalls.Bridge) ports.UI

// Local runs a UI in the host process. The UI talks to registry through a
// private bridge, and addresses it passes are native pointers.
//
// A Local serves one caller at a time.
type Local struct {
	ctx      context.Context
	registry *hostfuncs.HandlerRegistry
	bridge   *syscalls.Bridge
	gateway  *dispatch.Gateway
}

type localConfig struct {
	dispatch config.DispatchConfig
	logger   *slog.Logger
}

// LocalOption configures a Local.
type LocalOption func(*localConfig)

// WithDispatch selects the gateway middleware.
func WithDispatch(cfg config.DispatchConfig) LocalOption {
	return func(c *localConfig) {
		c.dispatch = cfg
	}
}

// WithLocalLogger sets the gateway's logger.
func WithLocalLogger(l *slog.Logger) LocalOption {
	return func(c *localConfig) {
		c.logger = l
	}
}

// NewLocal builds the UI and its gateway. Nothing reaches the registry until
// DLLEntry.
func NewLocal(registry *hostfuncs.HandlerRegistry, factory UIFactory, opts ...LocalOption) *Local {
	cfg := localConfig{
		dispatch: config.Defaults().Dispatch,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Local{
		ctx:      context.Background(),
		registry: registry,
		bridge:   syscalls.New(),
	}
	l.gateway = dispatch.New(factory(l.bridge), dispatch.FromConfig(cfg.dispatch, l.bridge, cfg.logger)...)
	return l
}

// Syscall implements ports.Syscaller on behalf of the UI.
func (l *Local) Syscall(op entities.Import, args ...uintptr) uintptr {
	return l.registry.Invoke(l.ctx, hostfuncs.Call{Op: op, Args: args, Memory: hostfuncs.NativeMemory{}})
}

// DLLEntry hands the UI its capability.
func (l *Local) DLLEntry(ctx context.Context) error {
	l.ctx = ctx
	_, err := guard(func() int {
		l.bridge.SetReference(l)
		return 0
	})
	if err != nil {
		return fmt.Errorf("dllEntry: %w", err)
	}
	return nil
}

// VMMain sends one typed command to the UI.
func (l *Local) VMMain(ctx context.Context, cmd entities.Command) (int32, error) {
	opcode, args := wireformat.Encode(cmd)
	return l.Call(ctx, opcode, args)
}

// Call sends a raw vmMain call. A panic inside the UI, the engine's abort
// included, is returned as the error.
func (l *Local) Call(ctx context.Context, opcode int32, args wireformat.Args) (int32, error) {
	l.ctx = ctx
	result, err := guard(func() int {
		return l.gateway.Handle(opcode, args)
	})
	if err != nil {
		return 0, fmt.Errorf("vmMain %s: %w", entities.Export(opcode), err)
	}
	return result, nil
}

// Close implements Module. The bridge cannot be reset, so a closed Local is
// simply dropped.
func (l *Local) Close(context.Context) error {
	return nil
}

func guard(fn func() int) (result int32, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %s", errors.Describe(r))
		}
	}()
	return int32(fn()), nil //nolint:gosec // G115: vmMain results are C ints
}
