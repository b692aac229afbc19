// Package native provides the syscall capability of a UI library loaded
// into the engine process. The engine hands dllEntry a C function pointer
// of type intptr_t (*)(intptr_t, ...), and Syscaller calls through it.
package native
