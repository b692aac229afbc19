// Package log provides structured logging (slog) routed to the engine
// console through the print syscall.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/q3ui/uibridge/syscalls"
)

// Printer is the part of the syscall bridge the handler needs.
type Printer interface {
	Ready() bool
	Print(text string)
}

// HostHandler implements slog.Handler. Records become single console lines
// with a colour escape per level. Until the bridge is loaded they go to the
// fallback writer instead.
type HostHandler struct {
	opts   handlerConfig
	mu     *sync.Mutex // guards fallback writes, shared by clones
	attrs  string      // pre-rendered WithAttrs output
	prefix string      // open groups joined by "."
}

// HandlerOption configures the HostHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Leveler
	addSource bool
	printer   Printer
	fallback  io.Writer
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:    slog.LevelInfo,
		printer:  syscalls.Default,
		fallback: os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithPrinter routes console lines to p instead of the process bridge.
func WithPrinter(p Printer) HandlerOption {
	return func(c *handlerConfig) {
		c.printer = p
	}
}

// WithFallback sets where lines go while the printer is not ready.
func WithFallback(w io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		c.fallback = w
	}
}

// NewHandler creates a new HostHandler with the given options.
func NewHandler(opts ...HandlerOption) *HostHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &HostHandler{opts: cfg, mu: &sync.Mutex{}}
}

// New returns a logger backed by a HostHandler.
func New(opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

// Enabled reports whether the handler handles records at the given level.
func (h *HostHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// WithAttrs returns a new HostHandler that includes the given attributes.
func (h *HostHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new HostHandler that qualifies later keys with name.
func (h *HostHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// Handle renders record as one console line and prints it.
func (h *HostHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(levelColor(record.Level))
	b.WriteString(record.Level.String())
	b.WriteString(colorWhite)
	b.WriteByte(' ')
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	if h.opts.addSource && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		b.WriteString(" source=")
		b.WriteString(filepath.Base(frame.File))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
	}
	b.WriteByte('\n')

	// The print syscall cannot carry NUL bytes.
	line := strings.ReplaceAll(b.String(), "\x00", "")

	if h.opts.printer != nil && h.opts.printer.Ready() {
		h.opts.printer.Print(line)
		return nil
	}
	if h.opts.fallback == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.opts.fallback, stripColors(line))
	return err
}
