package dispatch

import (
	"log/slog"

	"github.com/q3ui/uibridge/application/config"
)

// FromConfig returns the gateway options selected by cfg. Reporting wraps
// tracing, so a panic raised while tracing is reported as well.
func FromConfig(cfg config.DispatchConfig, bridge Bridge, logger *slog.Logger) []Option {
	opts := []Option{WithBridge(bridge), WithLogger(logger)}
	if cfg.ReportPanics {
		opts = append(opts, WithMiddleware(ReportMiddleware(bridge)))
	}
	if cfg.Trace {
		opts = append(opts, WithMiddleware(LoggingMiddleware(logger)))
	}
	return opts
}
