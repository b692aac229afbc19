package syscalls

import (
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
)

// MaxStringChars is the engine's maximum command token length.
const MaxStringChars = 1024

// Argc returns the number of tokens in the current console command.
func (b *Bridge) Argc() int {
	return int(abi.Result(b.call(entities.ImportArgc)))
}

// Argv returns token n of the current console command.
func (b *Bridge) Argv(n int) string {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	buf := make([]byte, MaxStringChars)
	sys.Syscall(entities.ImportArgv, abi.Int(int32(n)), f.Pin(buf), uintptr(len(buf)))
	return abi.CStringAt(buf)
}

// CmdExecuteText queues or runs console text.
func (b *Bridge) CmdExecuteText(when entities.ExecWhen, text string) {
	sys := b.Reference()

	var f abi.Frame
	defer f.Release()
	sys.Syscall(entities.ImportCmdExecuteText, abi.Int(int32(when)), cstring(&f, text))
}
