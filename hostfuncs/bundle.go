package hostfuncs

import (
	"context"
	"strconv"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// HostFuncBundle is a pre-configured set of related syscall handlers.
// Bundles allow registering multiple handlers at once.
type HostFuncBundle interface {
	// Handlers returns the handlers keyed by the import they serve.
	Handlers() map[entities.Import]Handler
}

type staticBundle struct {
	handlers map[entities.Import]Handler
}

func (b *staticBundle) Handlers() map[entities.Import]Handler {
	return b.handlers
}

// ConsoleBundle serves UI_ERROR and UI_PRINT. UI_ERROR writes the message and
// then panics with *HostAbort.
func ConsoleBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportError: func(_ context.Context, c Call) uintptr {
				msg, err := c.String(0)
				if err != nil {
					msg = err.Error()
				}
				e.print("^1ERROR: " + msg + "\n")
				panic(&HostAbort{Message: msg})
			},
			entities.ImportPrint: func(_ context.Context, c Call) uintptr {
				text, err := c.String(0)
				if err != nil {
					return 0
				}
				e.print(text)
				return 0
			},
		},
	}
}

// writeOut stores s in the out-buffer of c: address in argument 1, size in
// argument 2. A buffer outside the module's memory is logged and skipped.
func writeOut(ctx context.Context, c Call, s string) {
	if err := WriteString(c.Memory, c.Arg(1), int(c.Int(2)), s); err != nil {
		LoggerFrom(ctx).Debug("out buffer not written", "op", c.Op.String(), "error", err)
	}
}

// ClockBundle serves UI_MILLISECONDS.
func ClockBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportMilliseconds: func(context.Context, Call) uintptr {
				return abi.Int(e.now())
			},
		},
	}
}

// CvarBundle serves the cvar imports.
func CvarBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportCvarSet: func(_ context.Context, c Call) uintptr {
				name, err1 := c.String(0)
				value, err2 := c.String(1)
				if err1 == nil && err2 == nil {
					e.SetCvar(name, value)
				}
				return 0
			},
			entities.ImportCvarSetValue: func(_ context.Context, c Call) uintptr {
				if name, err := c.String(0); err == nil {
					e.SetCvar(name, strconv.FormatFloat(float64(c.Float(1)), 'g', -1, 32))
				}
				return 0
			},
			entities.ImportCvarVariableValue: func(_ context.Context, c Call) uintptr {
				name, err := c.String(0)
				if err != nil {
					return 0
				}
				return abi.Float(e.cvarFloat(name))
			},
			entities.ImportCvarVariableStringBuffer: func(ctx context.Context, c Call) uintptr {
				name, err := c.String(0)
				if err != nil {
					return 0
				}
				writeOut(ctx, c, e.CvarString(name))
				return 0
			},
			entities.ImportCvarReset: func(_ context.Context, c Call) uintptr {
				if name, err := c.String(0); err == nil {
					e.resetCvar(name)
				}
				return 0
			},
			entities.ImportCvarCreate: func(_ context.Context, c Call) uintptr {
				name, err1 := c.String(0)
				value, err2 := c.String(1)
				if err1 == nil && err2 == nil {
					e.createCvar(name, value, c.Int(2))
				}
				return 0
			},
		},
	}
}

// CommandBundle serves UI_ARGC, UI_ARGV and UI_CMD_EXECUTETEXT.
func CommandBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportArgc: func(context.Context, Call) uintptr {
				return uintptr(e.argc())
			},
			entities.ImportArgv: func(ctx context.Context, c Call) uintptr {
				writeOut(ctx, c, e.arg(c.Int(0)))
				return 0
			},
			entities.ImportCmdExecuteText: func(_ context.Context, c Call) uintptr {
				if text, err := c.String(1); err == nil {
					e.execute(entities.ExecWhen(c.Int(0)), text)
				}
				return 0
			},
		},
	}
}

// KeyBundle serves the key state and catcher imports.
func KeyBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportKeyIsDown: func(_ context.Context, c Call) uintptr {
				return abi.Bool(e.keyDown(c.Int(0)))
			},
			entities.ImportKeyClearStates: func(context.Context, Call) uintptr {
				e.clearKeys()
				return 0
			},
			entities.ImportKeyGetCatcher: func(context.Context, Call) uintptr {
				return abi.Int(e.Catcher())
			},
			entities.ImportKeySetCatcher: func(_ context.Context, c Call) uintptr {
				e.setCatcher(c.Int(0))
				return 0
			},
		},
	}
}

// RenderBundle serves the 2D renderer imports.
func RenderBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportRRegisterShaderNoMip: func(_ context.Context, c Call) uintptr {
				name, err := c.String(0)
				if err != nil || name == "" {
					return 0
				}
				return abi.Int(int32(e.registerShader(name)))
			},
			entities.ImportRSetColor: func(_ context.Context, c Call) uintptr {
				if c.Arg(0) == 0 {
					e.setColor(white)
					return 0
				}
				if rgba, err := ReadFloats(c.Memory, c.Arg(0), 4); err == nil {
					e.setColor([4]float32(rgba))
				}
				return 0
			},
			entities.ImportRDrawStretchPic: func(_ context.Context, c Call) uintptr {
				e.draw(Draw{
					X: c.Float(0), Y: c.Float(1), W: c.Float(2), H: c.Float(3),
					S1: c.Float(4), T1: c.Float(5), S2: c.Float(6), T2: c.Float(7),
					Shader: entities.Handle(c.Int(8)),
				})
				return 0
			},
			entities.ImportUpdateScreen: func(context.Context, Call) uintptr {
				e.updateScreen()
				return 0
			},
		},
	}
}

// SoundBundle serves sound registration and local playback.
func SoundBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportSRegisterSound: func(_ context.Context, c Call) uintptr {
				name, err := c.String(0)
				if err != nil || name == "" {
					return 0
				}
				return abi.Int(int32(e.registerSound(name)))
			},
			entities.ImportSStartLocalSound: func(_ context.Context, c Call) uintptr {
				e.startSound(entities.Handle(c.Int(0)))
				return 0
			},
		},
	}
}

// MemoryBundle serves UI_MEMORY_REMAINING.
func MemoryBundle(e *Engine) HostFuncBundle {
	return &staticBundle{
		handlers: map[entities.Import]Handler{
			entities.ImportMemoryRemaining: func(context.Context, Call) uintptr {
				return uintptr(e.memoryRemaining)
			},
		},
	}
}

// compositeBundle combines multiple bundles into one.
type compositeBundle struct {
	bundles []HostFuncBundle
}

func (b *compositeBundle) Handlers() map[entities.Import]Handler {
	result := make(map[entities.Import]Handler)
	for _, bundle := range b.bundles {
		for op, handler := range bundle.Handlers() {
			result[op] = handler
		}
	}
	return result
}

// AllBundles returns a bundle containing every built-in handler, all backed
// by e.
func AllBundles(e *Engine) HostFuncBundle {
	return &compositeBundle{
		bundles: []HostFuncBundle{
			ConsoleBundle(e),
			ClockBundle(e),
			CvarBundle(e),
			CommandBundle(e),
			KeyBundle(e),
			RenderBundle(e),
			SoundBundle(e),
			MemoryBundle(e),
		},
	}
}

// WithBundle registers all handlers from a bundle.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(b *registryBuilder) {
		for op, handler := range bundle.Handlers() {
			if err := b.addHandler(op, handler); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
