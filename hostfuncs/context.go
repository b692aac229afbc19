package hostfuncs

import (
	"context"
	"log/slog"

	"github.com/q3ui/uibridge/domain/entities"
)

// HostContext is the context a handler runs under. It names the import
// being served and carries values that middleware attaches to the call,
// such as the trace span.
type HostContext interface {
	context.Context

	// Import returns the opcode being served.
	Import() entities.Import

	// SetValue attaches a value to this call. Later middleware and the
	// handler see it through GetValue and Value.
	SetValue(key, value any)

	// GetValue returns a value attached with SetValue.
	GetValue(key any) (value any, ok bool)
}

// callContext keeps its values in a slice; a call carries one or two.
type callContext struct {
	context.Context
	op   entities.Import
	vals []keyValue
}

type keyValue struct {
	key, value any
}

// NewHostContext starts the context of one call to op.
func NewHostContext(ctx context.Context, op entities.Import) HostContext {
	return &callContext{Context: ctx, op: op}
}

func (c *callContext) Import() entities.Import { return c.op }

func (c *callContext) SetValue(key, value any) {
	for i := range c.vals {
		if c.vals[i].key == key {
			c.vals[i].value = value
			return
		}
	}
	c.vals = append(c.vals, keyValue{key: key, value: value})
}

func (c *callContext) GetValue(key any) (any, bool) {
	for _, kv := range c.vals {
		if kv.key == key {
			return kv.value, true
		}
	}
	return nil, false
}

// Value looks in the call's own values before the parent context, so
// values survive a handler wrapping ctx with context.WithValue.
func (c *callContext) Value(key any) any {
	if v, ok := c.GetValue(key); ok {
		return v
	}
	return c.Context.Value(key)
}

// HostContextFrom returns ctx itself when it already serves op, and a new
// HostContext around it otherwise.
func HostContextFrom(ctx context.Context, op entities.Import) HostContext {
	if hc, ok := ctx.(HostContext); ok && hc.Import() == op {
		return hc
	}
	return NewHostContext(ctx, op)
}

type loggerKey struct{}

// LoggerFrom returns the logger of the registry serving ctx, or
// slog.Default outside one.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
