// Package wireformat defines how host→library calls are laid out on the
// wire: an opcode plus twelve integer slots. These layouts must remain
// stable as they define the ABI contract with the engine.
package wireformat

import (
	"fmt"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
)

// ArgCount is the number of integer slots vmMain receives after the opcode.
const ArgCount = 12

// Args carries the raw vmMain arguments arg0..arg11. Slots an opcode does
// not use are ignored on decode and zero on encode.
type Args [ArgCount]int32

// MakeArgs builds Args from a prefix of values.
func MakeArgs(vals ...int32) Args {
	if len(vals) > ArgCount {
		panic(fmt.Sprintf("wireformat: %d args exceed the %d slots", len(vals), ArgCount))
	}
	var a Args
	copy(a[:], vals)
	return a
}

// Bool is the engine's single truthiness rule: any non-zero value is true.
func Bool(v int32) bool {
	return v != 0
}

// Result converts a boolean handler answer to the integer vmMain returns.
func Result(b bool) int {
	if b {
		return 1
	}
	return 0
}

func encodeBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

type decoder func(opcode int32, a Args) (entities.Command, error)

// decoders is indexed by entities.Export. It is the only place where raw
// integers become typed command arguments.
var decoders = [...]decoder{
	entities.ExportGetAPIVersion: func(int32, Args) (entities.Command, error) {
		return entities.GetAPIVersion{}, nil
	},
	entities.ExportInit: func(_ int32, a Args) (entities.Command, error) {
		return entities.Init{InGameLoad: Bool(a[0])}, nil
	},
	entities.ExportShutdown: func(int32, Args) (entities.Command, error) {
		return entities.Shutdown{}, nil
	},
	entities.ExportKeyEvent: func(_ int32, a Args) (entities.Command, error) {
		return entities.KeyEvent{Key: a[0], Down: Bool(a[1])}, nil
	},
	entities.ExportMouseEvent: func(_ int32, a Args) (entities.Command, error) {
		return entities.MouseEvent{DX: a[0], DY: a[1]}, nil
	},
	entities.ExportRefresh: func(_ int32, a Args) (entities.Command, error) {
		return entities.Refresh{RealTime: a[0]}, nil
	},
	entities.ExportIsFullscreen: func(int32, Args) (entities.Command, error) {
		return entities.IsFullscreen{}, nil
	},
	entities.ExportSetActiveMenu: func(opcode int32, a Args) (entities.Command, error) {
		menu, err := entities.ParseMenuCommand(a[0])
		if err != nil {
			return nil, &errors.DecodeError{Err: err, Field: "menu", Opcode: opcode, Value: a[0]}
		}
		return entities.SetActiveMenu{Menu: menu}, nil
	},
	entities.ExportConsoleCommand: func(_ int32, a Args) (entities.Command, error) {
		return entities.ConsoleCommand{RealTime: a[0]}, nil
	},
	entities.ExportDrawConnectScreen: func(_ int32, a Args) (entities.Command, error) {
		return entities.DrawConnectScreen{Overlay: Bool(a[0])}, nil
	},
	entities.ExportHasUniqueCDKey: func(int32, Args) (entities.Command, error) {
		return entities.HasUniqueCDKey{}, nil
	},
}

// Decode turns a raw vmMain call into a typed command. An unknown opcode or
// an out-of-range nested enum yields a *errors.DecodeError; nothing is ever
// mapped to a neighbouring value.
func Decode(opcode int32, a Args) (entities.Command, error) {
	op, err := entities.ParseExport(opcode)
	if err != nil {
		return nil, &errors.DecodeError{Err: err, Field: "opcode", Opcode: opcode, Value: opcode}
	}
	return decoders[op](opcode, a)
}

// Encode lays cmd out as vmMain would receive it.
func Encode(cmd entities.Command) (int32, Args) {
	var a Args
	switch c := cmd.(type) {
	case entities.Init:
		a[0] = encodeBool(c.InGameLoad)
	case entities.KeyEvent:
		a[0], a[1] = c.Key, encodeBool(c.Down)
	case entities.MouseEvent:
		a[0], a[1] = c.DX, c.DY
	case entities.Refresh:
		a[0] = c.RealTime
	case entities.SetActiveMenu:
		a[0] = int32(c.Menu)
	case entities.ConsoleCommand:
		a[0] = c.RealTime
	case entities.DrawConnectScreen:
		a[0] = encodeBool(c.Overlay)
	}
	return int32(cmd.Opcode()), a
}
