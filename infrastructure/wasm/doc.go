// Package wasm provides the syscall capability of a UI module compiled for
// wasip1. The engine side of the capability is the imported env.syscall.
package wasm
