// Command uibridge is the UI library loaded by the engine. Build it with
// -buildmode=c-shared for a native engine, or for GOOS=wasip1 as a reactor
// for a wasm engine. Either way it exports dllEntry and vmMain.
//
// Settings come from engine cvars (see config.FromCvars), read through the
// syscall bridge on the first command after the version query.
package main

import (
	"log/slog"
	"sync"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/application/dispatch"
	"github.com/q3ui/uibridge/application/menu"
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/ports"
	uilog "github.com/q3ui/uibridge/log"
	"github.com/q3ui/uibridge/syscalls"
	"github.com/q3ui/uibridge/wireformat"
)

// library is the process-wide state behind the two exports.
type library struct {
	bridge *syscalls.Bridge
	load   func(*syscalls.Bridge) (*config.Config, error)

	// bare answers the version query and calls made before dllEntry. It
	// has no middleware and never issues a syscall.
	bare *dispatch.Gateway

	once    sync.Once
	gateway *dispatch.Gateway
}

var lib = newLibrary(syscalls.Default, loadCvars)

func newLibrary(bridge *syscalls.Bridge, load func(*syscalls.Bridge) (*config.Config, error)) *library {
	return &library{
		bridge: bridge,
		load:   load,
		bare:   dispatch.New(nil, dispatch.WithBridge(bridge)),
	}
}

func loadCvars(b *syscalls.Bridge) (*config.Config, error) {
	return config.FromCvars(b.CvarVariableString)
}

func (l *library) dllEntry(sys ports.Syscaller) {
	l.bridge.SetReference(sys)
}

func (l *library) vmMain(command int32, args wireformat.Args) int {
	if command == int32(entities.ExportGetAPIVersion) || !l.bridge.Ready() {
		return l.bare.Handle(command, args)
	}
	return l.dispatcher().Handle(command, args)
}

// dispatcher builds the full gateway on the first command that is not the
// version query. Configuration problems are logged to the engine console.
func (l *library) dispatcher() *dispatch.Gateway {
	l.once.Do(func() {
		cfg, err := l.load(l.bridge)
		if err != nil {
			cfg = config.Defaults()
		}
		logger := uilog.New(
			uilog.WithPrinter(l.bridge),
			uilog.WithLevel(cfg.Log.SlogLevel()),
			uilog.WithSource(cfg.Log.Source),
		)
		if err != nil {
			logger.Warn("using default configuration", "error", err)
		}
		ui := menu.New(l.bridge, menu.WithLogger(logger))
		l.gateway = dispatch.New(ui, dispatch.FromConfig(cfg.Dispatch, l.bridge, logger)...)
		logger.Debug("gateway ready", slog.Bool("trace", cfg.Dispatch.Trace))
	})
	return l.gateway
}

func main() {}
