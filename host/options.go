package host

import (
	"io"
	"log/slog"

	"github.com/q3ui/uibridge/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithRegistry configures the executor with a syscall table.
func WithRegistry(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithMemoryLimitPages caps the linear memory of loaded modules. Zero keeps
// the wazero default.
func WithMemoryLimitPages(pages uint32) Option {
	return func(e *Executor) {
		e.memoryLimitPages = pages
	}
}

// WithLogger sets the executor's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = l
	}
}

// WithStderr routes the module's stderr, where the Go runtime writes
// panics, to w.
func WithStderr(w io.Writer) Option {
	return func(e *Executor) {
		e.stderr = w
	}
}
