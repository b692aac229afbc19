package hostfuncs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/q3ui/uibridge/domain/entities"
)

// HandlerRegistry is an immutable syscall table.
// Once created via NewRegistry, handlers cannot be added or removed.
// This ensures thread safety and lock-free lookups during execution.
type HandlerRegistry struct {
	handlers map[entities.Import]Handler
	imports  []entities.Import // sorted for consistent iteration
	logger   *slog.Logger
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	handlers   map[entities.Import]Handler
	middleware []Middleware
	logger     *slog.Logger
	errors     []error
}

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

// NewRegistry creates an immutable HandlerRegistry with the given options.
// Returns an error if any import is registered twice.
//
// Example usage:
//
//	engine := NewEngine(WithConsole(os.Stdout))
//	registry, err := NewRegistry(
//	    WithMiddleware(PanicRecoveryMiddleware(logger)),
//	    WithBundle(AllBundles(engine)),
//	    WithHandler(entities.ImportRealTime, realTime),
//	)
func NewRegistry(opts ...RegistryOption) (*HandlerRegistry, error) {
	b := &registryBuilder{
		handlers: make(map[entities.Import]Handler),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0] // Return first error
	}

	imports := make([]entities.Import, 0, len(b.handlers))
	for op := range b.handlers {
		imports = append(imports, op)
	}
	slices.Sort(imports)

	// Apply middleware chain to all handlers (FIFO order)
	wrapped := make(map[entities.Import]Handler, len(b.handlers))
	for op, handler := range b.handlers {
		h := handler
		// Apply middleware in reverse order so first middleware wraps outermost
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		wrapped[op] = h
	}

	return &HandlerRegistry{
		handlers: wrapped,
		imports:  imports,
		logger:   b.logger,
	}, nil
}

// Invoke serves one syscall. An import without a handler answers 0, which is
// what the engine's unimplemented traps return as well. Handlers reach the
// registry's logger through LoggerFrom.
func (r *HandlerRegistry) Invoke(ctx context.Context, call Call) uintptr {
	handler, ok := r.handlers[call.Op]
	if !ok {
		r.logger.Warn("unhandled ui import", "op", call.Op.String(), "args", len(call.Args))
		return 0
	}
	hc := HostContextFrom(ctx, call.Op)
	hc.SetValue(loggerKey{}, r.logger)
	return handler(hc, call)
}

// Has returns true if a handler for op is registered.
func (r *HandlerRegistry) Has(op entities.Import) bool {
	_, ok := r.handlers[op]
	return ok
}

// Imports returns the served imports in ordinal order.
func (r *HandlerRegistry) Imports() []entities.Import {
	return slices.Clone(r.imports)
}

func (b *registryBuilder) addHandler(op entities.Import, handler Handler) error {
	if !op.Valid() {
		return fmt.Errorf("invalid import opcode %d", int32(op))
	}
	if handler == nil {
		return fmt.Errorf("nil handler for %s", op)
	}
	if _, exists := b.handlers[op]; exists {
		return fmt.Errorf("duplicate handler for %s", op)
	}
	b.handlers[op] = handler
	return nil
}

// WithHandler registers a handler for one import.
func WithHandler(op entities.Import, handler Handler) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addHandler(op, handler); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithMiddleware adds middleware to the registry.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}

// WithLogger sets the logger used for unhandled imports and handed to
// handlers.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(b *registryBuilder) {
		b.logger = l
	}
}
