package wazero

import (
	"context"
	"strconv"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/ports"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// The import every UI module declares.
const (
	ModuleName   = "env"
	FunctionName = "syscall"
)

// syscallParams is the opcode followed by every argument slot.
var syscallParams = func() []api.ValueType {
	params := make([]api.ValueType, 1+ports.MaxSyscallArgs)
	for i := range params {
		params[i] = api.ValueTypeI32
	}
	return params
}()

// RegisterWithRuntime instantiates the host module that serves registry to
// guests importing env.syscall.
//
// Each call is translated as follows:
//   - the opcode and arguments are read from the stack as i32
//   - pointer arguments stay offsets into the caller's memory
//   - the handler's result is truncated back to i32
//
// A handler panic, *hostfuncs.HostAbort included, unwinds the guest and
// surfaces as the error of the exported function call that triggered it.
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, registry *hostfuncs.HandlerRegistry) error {
	_, err := runtime.NewHostModuleBuilder(ModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			handleSyscall(ctx, mod, stack, registry)
		}), syscallParams, []api.ValueType{api.ValueTypeI32}).
		WithParameterNames(syscallParamNames()...).
		Export(FunctionName).
		Instantiate(ctx)
	return err
}

func handleSyscall(ctx context.Context, mod api.Module, stack []uint64, registry *hostfuncs.HandlerRegistry) {
	call := hostfuncs.Call{
		Op:     entities.Import(api.DecodeI32(stack[0])),
		Args:   decodeArgs(stack[1:]),
		Memory: NewMemory(mod.Memory()),
	}
	result := registry.Invoke(ctx, call)
	stack[0] = api.EncodeI32(int32(result)) //nolint:gosec // G115: the guest ABI is 32-bit
}

// decodeArgs zero-extends each slot. Handlers reinterpret the low 32 bits
// as int, float bits or a memory offset as the import requires.
func decodeArgs(slots []uint64) []uintptr {
	args := make([]uintptr, len(slots))
	for i, s := range slots {
		args[i] = uintptr(uint32(s)) //nolint:gosec // G115: i32 slots
	}
	return args
}

func syscallParamNames() []string {
	names := []string{"op"}
	for i := 0; i < ports.MaxSyscallArgs; i++ {
		names = append(names, "a"+strconv.Itoa(i))
	}
	return names
}
