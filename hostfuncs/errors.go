package hostfuncs

import "fmt"

// HostAbort is raised by the UI_ERROR handler. Like the engine's error
// path it unwinds the whole call, so the module never regains control.
type HostAbort struct {
	Message string
}

func (e *HostAbort) Error() string {
	return "ui error: " + e.Message
}

// Unwinding implements errors.Unwinder.
func (e *HostAbort) Unwinding() {}

// MemoryError is an access outside the module's memory.
type MemoryError struct {
	Op   string
	Addr uintptr
	Len  int
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory %s out of range: addr=%#x len=%d", e.Op, e.Addr, e.Len)
}
