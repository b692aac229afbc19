// Package host runs a UI module against the reference engine in hostfuncs.
//
// Executor loads a module compiled for wasip1 under wazero. Local drives the
// library's own gateway in process, with native memory. Both expose the same
// entry points, so tests and the uihost console can switch between them.
package host
