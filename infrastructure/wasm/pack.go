package wasm

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/domain/ports"
)

// Slots is the fixed argument list of env.syscall.
type Slots [ports.MaxSyscallArgs]int32

// Pack narrows args to the i32 slots of the import. Unused slots are 0.
// Addresses fit because linear memory offsets are 32-bit.
func Pack(op entities.Import, args []uintptr) Slots {
	if len(args) > ports.MaxSyscallArgs {
		panic(&errors.ProtocolError{Operation: op.String(), Reason: "more than 12 syscall arguments"})
	}
	var s Slots
	for i, a := range args {
		s[i] = int32(uint32(a)) //nolint:gosec // G115: 32-bit guest ABI
	}
	return s
}

// Widen sign-extends an i32 result so abi.Result and abi.FloatResult read it
// the same way as a native one.
func Widen(r int32) uintptr {
	return uintptr(int(r))
}
