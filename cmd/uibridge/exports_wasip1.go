//go:build wasip1

package main

import (
	"github.com/q3ui/uibridge/infrastructure/wasm"
	"github.com/q3ui/uibridge/wireformat"
)

// dllEntry ignores its argument: the capability is the env.syscall import.
//
//go:wasmexport dllEntry
func dllEntry(int32) {
	lib.dllEntry(wasm.Syscaller{})
}

//go:wasmexport vmMain
func vmMain(command, arg0, arg1, arg2, arg3, arg4, arg5, arg6, arg7, arg8, arg9, arg10, arg11 int32) int32 {
	args := wireformat.Args{arg0, arg1, arg2, arg3, arg4, arg5, arg6, arg7, arg8, arg9, arg10, arg11}
	return int32(lib.vmMain(command, args)) //nolint:gosec // G115: vmMain results are C ints
}
