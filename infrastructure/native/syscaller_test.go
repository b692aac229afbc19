//go:build cgo && !wasip1

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/internal/abi"
	"github.com/q3ui/uibridge/internal/testutil"
	"github.com/q3ui/uibridge/syscalls"
)

func TestNew_Null(t *testing.T) {
	assert.Nil(t, New(0))
}

func TestSyscall_ForwardsEveryArity(t *testing.T) {
	sys := New(Loopback())
	require.NotNil(t, sys)

	for n := 0; n <= 12; n++ {
		args := make([]uintptr, n)
		want := 0
		for i := range args {
			args[i] = uintptr(10 + i)
			want += (i + 1) * (10 + i)
		}
		got := sys.Syscall(entities.Import(n), args...)
		assert.Equal(t, uintptr(want), got, "argc %d", n)
	}
}

func TestSyscall_NegativeArgs(t *testing.T) {
	sys := New(Loopback())

	got := sys.Syscall(entities.Import(2), abi.Int(-3), abi.Int(1))
	assert.Equal(t, int32(-1), abi.Result(got))
}

func TestSyscall_TooManyArgs(t *testing.T) {
	sys := New(Loopback())

	testutil.RequireFatal[*errors.ProtocolError](t, func() {
		sys.Syscall(entities.ImportPrint, make([]uintptr, 13)...)
	})
}

func TestBridge_RejectsNullPointer(t *testing.T) {
	b := syscalls.New()

	testutil.RequireFatal[*errors.ProtocolError](t, func() {
		b.SetReference(New(0))
	})
}
