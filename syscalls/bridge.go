// Package syscalls is the library→host half of the bridge. It owns the
// process-wide syscall capability and offers typed wrappers over it.
package syscalls

import (
	"sync/atomic"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/domain/ports"
	"github.com/q3ui/uibridge/internal/abi"
)

// capability boxes the Syscaller so an atomic.Pointer can hold it.
type capability struct {
	sys ports.Syscaller
}

// Bridge holds the syscall capability. It is written exactly once, by the
// load hook, and read by every wrapper afterwards. The slot is atomic, so a
// host calling from several threads cannot tear it, although the handlers
// above the bridge still assume a single caller.
type Bridge struct {
	ref atomic.Pointer[capability]
}

// New returns a bridge whose capability is not yet set.
func New() *Bridge {
	return &Bridge{}
}

// SetReference stores the capability. A nil capability or a second call is
// a protocol violation and panics.
func (b *Bridge) SetReference(sys ports.Syscaller) {
	if sys == nil {
		panic(&errors.ProtocolError{Operation: "dllEntry", Reason: "nil syscall capability"})
	}
	if !b.ref.CompareAndSwap(nil, &capability{sys: sys}) {
		panic(&errors.ProtocolError{Operation: "dllEntry", Reason: "syscall capability already set"})
	}
}

// Ready reports whether the capability has been set.
func (b *Bridge) Ready() bool {
	return b.ref.Load() != nil
}

// Reference returns the capability. Calling it before SetReference panics.
func (b *Bridge) Reference() ports.Syscaller {
	c := b.ref.Load()
	if c == nil {
		panic(&errors.ProtocolError{Operation: "syscall", Reason: "capability used before dllEntry"})
	}
	return c.sys
}

// call issues a syscall without pointer arguments.
func (b *Bridge) call(op entities.Import, args ...uintptr) uintptr {
	return b.Reference().Syscall(op, args...)
}

// cstring marshals text into f and panics on an embedded NUL, before any
// syscall is attempted.
func cstring(f *abi.Frame, text string) uintptr {
	ptr, err := f.CString(text)
	if err != nil {
		panic(err)
	}
	return ptr
}

// Error hands text to the host error path and never returns. The host is
// expected to unwind; if it returns anyway the bridge panics with a
// *errors.HostError.
func (b *Bridge) Error(text string) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportError, cstring(&f, text))

	panic(&errors.HostError{Message: text})
}

// Print writes text to the host console.
func (b *Bridge) Print(text string) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportPrint, cstring(&f, text))
}

// Milliseconds returns the host clock exactly as reported.
func (b *Bridge) Milliseconds() int {
	return int(b.call(entities.ImportMilliseconds))
}

// MemoryRemaining returns the free bytes in the host's hunk.
func (b *Bridge) MemoryRemaining() int {
	return int(abi.Result(b.call(entities.ImportMemoryRemaining)))
}
