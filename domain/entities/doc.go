// Package entities provides the core protocol types of the UI bridge.
// Opcodes in this package are ordinal-significant: their numeric values are
// the engine ABI and must never be reordered.
package entities
