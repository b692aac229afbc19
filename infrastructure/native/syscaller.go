//go:build cgo && !wasip1

package native

/*
#include <stdint.h>

typedef intptr_t (*uibridge_syscall_fn)(intptr_t, ...);

static intptr_t uibridge_call(uintptr_t fn, intptr_t op, int argc, const intptr_t *a) {
	uibridge_syscall_fn f = (uibridge_syscall_fn)fn;
	switch (argc) {
	case 0:  return f(op);
	case 1:  return f(op, a[0]);
	case 2:  return f(op, a[0], a[1]);
	case 3:  return f(op, a[0], a[1], a[2]);
	case 4:  return f(op, a[0], a[1], a[2], a[3]);
	case 5:  return f(op, a[0], a[1], a[2], a[3], a[4]);
	case 6:  return f(op, a[0], a[1], a[2], a[3], a[4], a[5]);
	case 7:  return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6]);
	case 8:  return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7]);
	case 9:  return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8]);
	case 10: return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8], a[9]);
	case 11: return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8], a[9], a[10]);
	default: return f(op, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8], a[9], a[10], a[11]);
	}
}
*/
import "C"

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/domain/ports"
)

// Compile-time interface compliance check
var _ ports.Syscaller = (*Syscaller)(nil)

// Syscaller calls the engine's syscall function pointer.
type Syscaller struct {
	fn uintptr
}

// New wraps the raw pointer received by dllEntry. The null pointer yields a
// nil capability, which the bridge rejects.
//
// This is the only place an integer becomes a callable function; fn is
// trusted to be the engine's syscall entry point.
func New(fn uintptr) ports.Syscaller {
	if fn == 0 {
		return nil
	}
	return &Syscaller{fn: fn}
}

// Syscall implements ports.Syscaller. Only the arguments actually given are
// forwarded; the engine reads as many as the opcode defines.
func (s *Syscaller) Syscall(op entities.Import, args ...uintptr) uintptr {
	if len(args) > ports.MaxSyscallArgs {
		panic(&errors.ProtocolError{Operation: op.String(), Reason: "more than 12 syscall arguments"})
	}
	var a [ports.MaxSyscallArgs]C.intptr_t
	for i, v := range args {
		a[i] = C.intptr_t(v)
	}
	r := C.uibridge_call(C.uintptr_t(s.fn), C.intptr_t(op), C.int(len(args)), &a[0])
	return uintptr(r)
}
