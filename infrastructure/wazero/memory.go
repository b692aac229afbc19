package wazero

import (
	"math"

	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/tetratelabs/wazero/api"
)

// Memory exposes a guest's linear memory as a hostfuncs.Memory. Addresses
// are offsets from the start of that memory.
type Memory struct {
	mem api.Memory
}

// NewMemory wraps mem. A module without memory yields a Memory that fails
// every access.
func NewMemory(mem api.Memory) Memory {
	return Memory{mem: mem}
}

// Read implements hostfuncs.Memory. The returned slice is a copy, so it
// stays valid if the guest grows its memory afterwards.
func (m Memory) Read(addr uintptr, n int) ([]byte, error) {
	offset, size, ok := m.bounds(addr, n)
	if !ok {
		return nil, &hostfuncs.MemoryError{Op: "read", Addr: addr, Len: n}
	}
	view, ok := m.mem.Read(offset, size)
	if !ok {
		return nil, &hostfuncs.MemoryError{Op: "read", Addr: addr, Len: n}
	}
	out := make([]byte, len(view))
	copy(out, view)
	return out, nil
}

// Write implements hostfuncs.Memory.
func (m Memory) Write(addr uintptr, data []byte) error {
	offset, _, ok := m.bounds(addr, len(data))
	if !ok || !m.mem.Write(offset, data) {
		return &hostfuncs.MemoryError{Op: "write", Addr: addr, Len: len(data)}
	}
	return nil
}

// Size returns the current memory size in bytes.
func (m Memory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

func (m Memory) bounds(addr uintptr, n int) (offset, size uint32, ok bool) {
	if m.mem == nil || n < 0 || addr > math.MaxUint32 || uint64(n) > math.MaxUint32 {
		return 0, 0, false
	}
	return uint32(addr), uint32(n), true //nolint:gosec // G115: checked above
}
