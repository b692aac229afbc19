package abi

import "unsafe"

// The helpers below read and write raw addresses. They are only valid for
// memory that is pinned for the duration of the access, such as a Frame's
// buffers while its syscall is being serviced.

// ReadCString reads a NUL-terminated string of at most limit bytes at ptr.
func ReadCString(ptr uintptr, limit int) string {
	if ptr == 0 || limit <= 0 {
		return ""
	}
	//nolint:gosec // G103: host-side view of pinned guest memory
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), limit)
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// Bytes returns a view of n bytes at ptr without copying.
func Bytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	//nolint:gosec // G103: host-side view of pinned guest memory
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// WriteCString copies s into the size-byte buffer at ptr, truncating when
// needed, and always terminates it.
func WriteCString(ptr uintptr, size int, s string) {
	dst := Bytes(ptr, size)
	if len(dst) == 0 {
		return
	}
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
}

// Floats returns a view of n float32 values at ptr.
func Floats(ptr uintptr, n int) []float32 {
	if ptr == 0 || n <= 0 {
		return nil
	}
	//nolint:gosec // G103: host-side view of pinned guest memory
	return unsafe.Slice((*float32)(unsafe.Pointer(ptr)), n)
}

// CStringAt reads the NUL-terminated prefix of buf.
func CStringAt(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
