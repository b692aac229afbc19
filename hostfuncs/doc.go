// Package hostfuncs is a pure Go stand-in for the engine side of the UI
// syscall table. Handlers are keyed by import opcode and read their pointer
// arguments through a Memory, so the same registry serves an in-process
// module and a wasm guest.
package hostfuncs
