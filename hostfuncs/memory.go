package hostfuncs

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/q3ui/uibridge/internal/abi"
)

// MaxStringArg bounds how far a C string argument is scanned for its NUL.
const MaxStringArg = 16 * 1024

// Memory is the address space a module hands pointers into.
type Memory interface {
	// Read returns a copy of n bytes at addr.
	Read(addr uintptr, n int) ([]byte, error)
	// Write copies data to addr.
	Write(addr uintptr, data []byte) error
}

// StringReader is implemented by memories that can scan for a terminator
// without reading past it.
type StringReader interface {
	ReadString(addr uintptr, limit int) (string, error)
}

// ReadString reads a NUL-terminated string of at most limit bytes at addr.
// Text without a terminator inside the limit is truncated.
func ReadString(mem Memory, addr uintptr, limit int) (string, error) {
	if addr == 0 {
		return "", &MemoryError{Addr: addr, Op: "read string"}
	}
	if sr, ok := mem.(StringReader); ok {
		return sr.ReadString(addr, limit)
	}
	const chunk = 256
	var out []byte
	for len(out) < limit {
		n := min(chunk, limit-len(out))
		buf, err := mem.Read(addr+uintptr(len(out)), n)
		if err != nil {
			// The last chunk may run past the end of memory; retry byte by byte.
			buf, err = readUntilFault(mem, addr+uintptr(len(out)), n)
			if len(buf) == 0 {
				return "", err
			}
		}
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			return string(append(out, buf[:i]...)), nil
		}
		out = append(out, buf...)
		if len(buf) < n {
			break
		}
	}
	return string(out), nil
}

func readUntilFault(mem Memory, addr uintptr, n int) ([]byte, error) {
	var out []byte
	for i := 0; i < n; i++ {
		b, err := mem.Read(addr+uintptr(i), 1)
		if err != nil {
			return out, err
		}
		out = append(out, b[0])
		if b[0] == 0 {
			break
		}
	}
	return out, nil
}

// WriteString stores s at addr as a C string in a buffer of size bytes,
// truncating so the terminator always fits.
func WriteString(mem Memory, addr uintptr, size int, s string) error {
	if size <= 0 {
		return nil
	}
	if addr == 0 {
		return &MemoryError{Addr: addr, Len: size, Op: "write string"}
	}
	if len(s) > size-1 {
		s = s[:size-1]
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return mem.Write(addr, buf)
}

// ReadFloats reads n little-endian float32 values at addr.
func ReadFloats(mem Memory, addr uintptr, n int) ([]float32, error) {
	raw, err := mem.Read(addr, 4*n)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}

// NativeMemory is the address space of the current process. It is used when
// the module runs in process and its pointers are real addresses.
type NativeMemory struct{}

// Read implements Memory.
func (NativeMemory) Read(addr uintptr, n int) ([]byte, error) {
	if addr == 0 {
		return nil, &MemoryError{Addr: addr, Len: n, Op: "read"}
	}
	out := make([]byte, n)
	copy(out, abi.Bytes(addr, n))
	return out, nil
}

// ReadString implements StringReader.
func (NativeMemory) ReadString(addr uintptr, limit int) (string, error) {
	if addr == 0 {
		return "", &MemoryError{Addr: addr, Op: "read string"}
	}
	return abi.ReadCString(addr, limit), nil
}

// Write implements Memory.
func (NativeMemory) Write(addr uintptr, data []byte) error {
	if addr == 0 {
		return &MemoryError{Addr: addr, Len: len(data), Op: "write"}
	}
	copy(abi.Bytes(addr, len(data)), data)
	return nil
}
