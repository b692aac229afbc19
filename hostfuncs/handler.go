package hostfuncs

import (
	"context"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// Call is one syscall as the host receives it.
type Call struct {
	Op     entities.Import
	Args   []uintptr
	Memory Memory
}

// Handler serves one import. Its result is the raw syscall return value.
type Handler func(ctx context.Context, call Call) uintptr

// Arg returns argument i, or 0 when the module passed fewer.
func (c Call) Arg(i int) uintptr {
	if i < 0 || i >= len(c.Args) {
		return 0
	}
	return c.Args[i]
}

// Int returns argument i as a C int.
func (c Call) Int(i int) int32 {
	return abi.Result(c.Arg(i))
}

// Float returns argument i decoded from PASSFLOAT bits.
func (c Call) Float(i int) float32 {
	return abi.FloatResult(c.Arg(i))
}

// Bool returns argument i as a qboolean.
func (c Call) Bool(i int) bool {
	return c.Int(i) != 0
}

// String reads the C string argument i.
func (c Call) String(i int) (string, error) {
	return ReadString(c.Memory, c.Arg(i), MaxStringArg)
}
