//go:build wasip1

package wasm

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/ports"
)

//go:wasmimport env syscall
func hostSyscall(op, a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11 int32) int32

// Compile-time interface compliance check
var _ ports.Syscaller = Syscaller{}

// Syscaller calls the imported env.syscall.
type Syscaller struct{}

// Syscall implements ports.Syscaller.
func (Syscaller) Syscall(op entities.Import, args ...uintptr) uintptr {
	s := Pack(op, args)
	return Widen(hostSyscall(int32(op), s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8], s[9], s[10], s[11]))
}
