//go:build cgo && !wasip1

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/q3ui/uibridge/infrastructure/native"
	"github.com/q3ui/uibridge/wireformat"
)

//export dllEntry
func dllEntry(syscallptr C.intptr_t) {
	lib.dllEntry(native.New(uintptr(syscallptr)))
}

//export vmMain
func vmMain(command, arg0, arg1, arg2, arg3, arg4, arg5, arg6, arg7, arg8, arg9, arg10, arg11 C.int) C.intptr_t {
	args := wireformat.Args{
		int32(arg0), int32(arg1), int32(arg2), int32(arg3),
		int32(arg4), int32(arg5), int32(arg6), int32(arg7),
		int32(arg8), int32(arg9), int32(arg10), int32(arg11),
	}
	return C.intptr_t(lib.vmMain(int32(command), args))
}
