package syscalls

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// MaxCvarValue is the size of the buffer used to read string cvars.
const MaxCvarValue = 256

// CvarSet sets a cvar from text.
func (b *Bridge) CvarSet(name, value string) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportCvarSet, cstring(&f, name), cstring(&f, value))
}

// CvarSetValue sets a cvar from a float.
func (b *Bridge) CvarSetValue(name string, value float32) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportCvarSetValue, cstring(&f, name), abi.Float(value))
}

// CvarVariableValue returns a cvar as a float. The host answers with the
// float's bits.
func (b *Bridge) CvarVariableValue(name string) float32 {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	return abi.FloatResult(sys.Syscall(entities.ImportCvarVariableValue, cstring(&f, name)))
}

// CvarVariableString returns a cvar's text.
func (b *Bridge) CvarVariableString(name string) string {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	buf := make([]byte, MaxCvarValue)
	sys.Syscall(entities.ImportCvarVariableStringBuffer, cstring(&f, name), f.Pin(buf), uintptr(len(buf)))
	return abi.CStringAt(buf)
}

// CvarReset restores a cvar's default.
func (b *Bridge) CvarReset(name string) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportCvarReset, cstring(&f, name))
}

// CvarCreate registers a cvar with a default value and flags.
func (b *Bridge) CvarCreate(name, value string, flags int32) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportCvarCreate, cstring(&f, name), cstring(&f, value), abi.Int(flags))
}
