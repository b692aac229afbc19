// Package testutil provides the stub host and assertions shared by the
// bridge's package tests.
package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// CapturePanic runs fn and returns the value it panicked with, or nil.
func CapturePanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}

// RequireFatal asserts that fn panics with an error matching E and returns it.
func RequireFatal[E error](t *testing.T, fn func(), msgAndArgs ...interface{}) E {
	t.Helper()

	var target E
	r := CapturePanic(fn)
	require.NotNil(t, r, msgAndArgs...)

	err, ok := r.(error)
	require.True(t, ok, "panic value %v (%T) is not an error", r, r)
	require.True(t, errors.As(err, &target), "panic %v (%T) does not match %T", err, err, target)
	return target
}
