// Package abi provides the raw value conversions of the syscall boundary:
// C strings, pinned argument memory and the engine's float passing rule.
package abi

import (
	"math"
	"runtime"
	"strings"
	"unsafe"

	"github.com/q3ui/uibridge/domain/errors"
)

// CString is a NUL-terminated byte buffer ready to cross the boundary.
type CString []byte

// Marshal converts text to a CString. Text containing a NUL byte is rejected
// instead of being truncated at the NUL.
func Marshal(text string) (CString, error) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return nil, &errors.MarshalError{Offset: i, Length: len(text)}
	}
	buf := make([]byte, len(text)+1)
	copy(buf, text)
	return CString(buf), nil
}

// Len returns the buffer length including the terminator.
func (c CString) Len() int {
	return len(c)
}

// String returns the text without its terminator.
func (c CString) String() string {
	if len(c) == 0 {
		return ""
	}
	return string(c[:len(c)-1])
}

// Frame pins the memory referenced by one syscall's arguments. The host only
// receives addresses, so every buffer has to stay put and alive until the
// call returns; Release must be called after that and not before.
//
//	var f abi.Frame
//	defer f.Release()
//	ptr, err := f.CString(text)
//	...
//	sys.Syscall(op, ptr)
type Frame struct {
	pinner runtime.Pinner
	pinned int
}

// CString marshals text and pins the result.
func (f *Frame) CString(text string) (uintptr, error) {
	cs, err := Marshal(text)
	if err != nil {
		return 0, err
	}
	return f.Pin(cs), nil
}

// Pin pins buf and returns the address of its first byte.
// An empty buffer yields the null address.
func (f *Frame) Pin(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	f.pinner.Pin(&buf[0])
	f.pinned++
	//nolint:gosec // G103: the address is handed to the host as an integer
	return uintptr(unsafe.Pointer(&buf[0]))
}

// PinFloats pins a float vector such as an RGBA colour.
func (f *Frame) PinFloats(v []float32) uintptr {
	if len(v) == 0 {
		return 0
	}
	f.pinner.Pin(&v[0])
	f.pinned++
	//nolint:gosec // G103: the address is handed to the host as an integer
	return uintptr(unsafe.Pointer(&v[0]))
}

// Pinned returns the number of buffers currently pinned by f.
func (f *Frame) Pinned() int {
	return f.pinned
}

// Release unpins everything pinned by f.
func (f *Frame) Release() {
	f.pinner.Unpin()
	f.pinned = 0
}

// Float passes a float argument the way the engine expects: its IEEE-754
// bits in an integer slot.
func Float(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

// FloatResult reinterprets an integer syscall result as a float.
func FloatResult(r uintptr) float32 {
	return math.Float32frombits(uint32(r))
}

// Bool encodes a qboolean argument.
func Bool(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// Int encodes a signed integer argument. Negative values keep their two's
// complement bits.
func Int(v int32) uintptr {
	return uintptr(int(v))
}

// Result reinterprets a syscall result as a C int.
func Result(r uintptr) int32 {
	return int32(r)
}
