package dispatch

import (
	"log/slog"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
)

// Handler serves one decoded command.
type Handler func(cmd entities.Command) int

// Middleware is a function that wraps a Handler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
type Middleware func(next Handler) Handler

// LoggingMiddleware writes one debug record per command.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(cmd entities.Command) int {
			result := next(cmd)
			logger.Debug("vmMain", "op", cmd.Opcode().String(), "cmd", cmd, "result", result)
			return result
		}
	}
}

// ReportMiddleware catches a panicking handler and reports it through the
// host error path. bridge.Error does not return, so the call is abandoned.
func ReportMiddleware(bridge Bridge) Middleware {
	return func(next Handler) Handler {
		return func(cmd entities.Command) int {
			defer func() {
				if r := recover(); r != nil {
					if reported(r) {
						panic(r)
					}
					bridge.Error(cmd.Opcode().String() + ": " + errors.Describe(r))
				}
			}()
			return next(cmd)
		}
	}
}

// reported tells whether r already went through the host error path.
func reported(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	return errors.IsUnwinding(err)
}
