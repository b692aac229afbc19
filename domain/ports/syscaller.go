package ports

import "github.com/q3ui/uibridge/domain/entities"

// Syscaller is the host's syscall capability: an opcode plus up to twelve
// pointer-sized arguments, answered with one pointer-sized result.
// Arguments that are addresses must stay valid until Syscall returns.
type Syscaller interface {
	Syscall(op entities.Import, args ...uintptr) uintptr
}

// SyscallFunc adapts an ordinary function to a Syscaller.
type SyscallFunc func(op entities.Import, args ...uintptr) uintptr

// Syscall implements Syscaller.
func (f SyscallFunc) Syscall(op entities.Import, args ...uintptr) uintptr {
	return f(op, args...)
}

// MaxSyscallArgs is the widest argument list any trampoline forwards.
const MaxSyscallArgs = 12
