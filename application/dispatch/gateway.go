// Package dispatch implements the host→library gateway behind vmMain.
package dispatch

import (
	"log/slog"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/domain/ports"
	"github.com/q3ui/uibridge/syscalls"
	"github.com/q3ui/uibridge/wireformat"
)

// Bridge is the part of the syscall bridge the gateway needs.
type Bridge interface {
	Ready() bool
	Error(text string)
}

// Gateway decodes raw vmMain calls and routes each to exactly one UI
// handler. It holds no mutable state of its own.
type Gateway struct {
	ui         ports.UI
	bridge     Bridge
	logger     *slog.Logger
	middleware []Middleware
	handler    Handler
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithBridge selects the bridge used for the readiness check and for
// reporting. Defaults to syscalls.Default.
func WithBridge(b Bridge) Option {
	return func(g *Gateway) {
		g.bridge = b
	}
}

// WithLogger sets the logger used by the gateway.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

// WithMiddleware adds middleware around every handler except the version
// query. Middleware executes in FIFO order.
func WithMiddleware(mw ...Middleware) Option {
	return func(g *Gateway) {
		g.middleware = append(g.middleware, mw...)
	}
}

// New creates a gateway in front of ui.
func New(ui ports.UI, opts ...Option) *Gateway {
	g := &Gateway{
		ui:     ui,
		bridge: syscalls.Default,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	h := Handler(g.execute)
	// Apply middleware in reverse order so first middleware wraps outermost
	for i := len(g.middleware) - 1; i >= 0; i-- {
		h = g.middleware[i](h)
	}
	g.handler = h
	return g
}

// Handle serves one vmMain call and returns the handler's result verbatim.
// Calls before the load hook and undecodable calls are protocol failures
// and panic.
func (g *Gateway) Handle(opcode int32, args wireformat.Args) int {
	if !g.bridge.Ready() {
		panic(&errors.ProtocolError{Operation: "vmMain", Reason: "capability not set"})
	}

	cmd, err := wireformat.Decode(opcode, args)
	if err != nil {
		g.logger.Error("rejecting vmMain call", "opcode", opcode, "error", err)
		panic(err)
	}

	if _, ok := cmd.(entities.GetAPIVersion); ok {
		return entities.APIVersion
	}
	return g.handler(cmd)
}

// Dispatch serves an already typed command.
func (g *Gateway) Dispatch(cmd entities.Command) int {
	opcode, args := wireformat.Encode(cmd)
	return g.Handle(opcode, args)
}

func (g *Gateway) execute(cmd entities.Command) int {
	switch c := cmd.(type) {
	case entities.GetAPIVersion:
		return entities.APIVersion
	case entities.Init:
		g.ui.Init(c.InGameLoad)
	case entities.Shutdown:
		g.ui.Shutdown()
	case entities.KeyEvent:
		g.ui.KeyEvent(c.Key, c.Down)
	case entities.MouseEvent:
		g.ui.MouseEvent(c.DX, c.DY)
	case entities.Refresh:
		g.ui.Refresh(c.RealTime)
	case entities.IsFullscreen:
		return wireformat.Result(g.ui.IsFullscreen())
	case entities.SetActiveMenu:
		g.ui.SetActiveMenu(c.Menu)
	case entities.ConsoleCommand:
		return wireformat.Result(g.ui.ConsoleCommand(c.RealTime))
	case entities.DrawConnectScreen:
		g.ui.DrawConnectScreen(c.Overlay)
	case entities.HasUniqueCDKey:
		return wireformat.Result(g.ui.HasUniqueCDKey())
	default:
		panic(&errors.ProtocolError{Operation: "vmMain", Reason: "unhandled command " + cmd.Opcode().String()})
	}
	return 0
}
