package wazero

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/internal/testutil"
)

func guestMemory(t *testing.T) Memory {
	t.Helper()
	ctx := context.Background()

	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	registry, err := hostfuncs.NewRegistry()
	require.NoError(t, err)
	require.NoError(t, RegisterWithRuntime(ctx, rt, registry))

	mod, err := rt.Instantiate(ctx, testutil.EchoModule())
	require.NoError(t, err)
	return NewMemory(mod.Memory())
}

func TestMemory_ReadString(t *testing.T) {
	mem := guestMemory(t)

	s, err := hostfuncs.ReadString(mem, testutil.EchoCvar, hostfuncs.MaxStringArg)
	require.NoError(t, err)
	assert.Equal(t, "ui_version", s)
}

func TestMemory_ReadCopies(t *testing.T) {
	mem := guestMemory(t)

	b, err := mem.Read(testutil.EchoHello, 2)
	require.NoError(t, err)
	b[0] = 'X'

	again, err := mem.Read(testutil.EchoHello, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), again)
}

func TestMemory_WriteThenRead(t *testing.T) {
	mem := guestMemory(t)

	require.NoError(t, hostfuncs.WriteString(mem, testutil.EchoScratch, 8, "cursor"))
	s, err := hostfuncs.ReadString(mem, testutil.EchoScratch, 8)
	require.NoError(t, err)
	assert.Equal(t, "cursor", s)
}

func TestMemory_OutOfRange(t *testing.T) {
	mem := guestMemory(t)
	size := uintptr(mem.Size())
	assert.Equal(t, uintptr(65536), size)

	_, err := mem.Read(size-2, 4)
	var merr *hostfuncs.MemoryError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "read", merr.Op)

	err = mem.Write(size, []byte{1})
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "write", merr.Op)

	_, err = mem.Read(16, -1)
	require.Error(t, err)
}

func TestMemory_StringAtEndOfMemory(t *testing.T) {
	mem := guestMemory(t)
	size := uintptr(mem.Size())
	require.NoError(t, mem.Write(size-3, []byte("abc")))

	s, err := hostfuncs.ReadString(mem, size-3, hostfuncs.MaxStringArg)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestMemory_Nil(t *testing.T) {
	mem := NewMemory(nil)

	_, err := mem.Read(16, 1)
	require.Error(t, err)
	require.Error(t, mem.Write(16, []byte{1}))
	assert.Zero(t, mem.Size())
}
