package wazero

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/hostfuncs"
	"github.com/q3ui/uibridge/internal/abi"
	"github.com/q3ui/uibridge/internal/testutil"
)

func TestRegisterWithRuntime_HostModule(t *testing.T) {
	ctx := context.Background()
	registry, err := hostfuncs.NewRegistry()
	require.NoError(t, err)

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	require.NoError(t, RegisterWithRuntime(ctx, rt, registry))
	assert.NotNil(t, rt.Module(ModuleName))

	err = RegisterWithRuntime(ctx, rt, registry)
	assert.Error(t, err, "one runtime serves a single syscall table")
}

func TestSyscallSignature(t *testing.T) {
	if len(syscallParams) != 13 {
		t.Fatalf("len(syscallParams) = %d, want 13", len(syscallParams))
	}
	for i, p := range syscallParams {
		if p != api.ValueTypeI32 {
			t.Errorf("param %d = %v, want i32", i, p)
		}
	}
	names := syscallParamNames()
	if names[0] != "op" || names[12] != "a11" {
		t.Errorf("param names = %v", names)
	}
}

func TestDecodeArgs(t *testing.T) {
	args := decodeArgs([]uint64{api.EncodeI32(-1), 7})

	if args[0] != 0xFFFFFFFF {
		t.Errorf("args[0] = %#x, want zero-extended 0xffffffff", args[0])
	}
	if abi.Result(args[0]) != -1 {
		t.Errorf("abi.Result(args[0]) = %d, want -1", abi.Result(args[0]))
	}
	if args[1] != 7 {
		t.Errorf("args[1] = %d, want 7", args[1])
	}
}

// echoGuest instantiates the echo module against registry.
func echoGuest(t *testing.T, registry *hostfuncs.HandlerRegistry) api.Module {
	t.Helper()
	ctx := context.Background()

	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	require.NoError(t, RegisterWithRuntime(ctx, rt, registry))
	mod, err := rt.Instantiate(ctx, testutil.EchoModule())
	require.NoError(t, err)
	return mod
}

// syscall runs op through the guest's vmMain.
func syscall(ctx context.Context, mod api.Module, op entities.Import, args ...uint64) (int32, error) {
	params := make([]uint64, 13)
	params[0] = 1
	params[1] = api.EncodeI32(int32(op))
	copy(params[2:], args)
	res, err := mod.ExportedFunction("vmMain").Call(ctx, params...)
	if err != nil {
		return 0, err
	}
	return api.DecodeI32(res[0]), nil
}

func TestRegisterWithRuntime_Roundtrip(t *testing.T) {
	ctx := context.Background()
	var printed []string

	registry, err := hostfuncs.NewRegistry(
		hostfuncs.WithHandler(entities.ImportPrint, func(_ context.Context, c hostfuncs.Call) uintptr {
			text, err := c.String(0)
			require.NoError(t, err)
			printed = append(printed, text)
			return 0
		}),
		hostfuncs.WithHandler(entities.ImportMilliseconds, func(context.Context, hostfuncs.Call) uintptr {
			return abi.Int(-5)
		}),
		hostfuncs.WithHandler(entities.ImportArgv, func(_ context.Context, c hostfuncs.Call) uintptr {
			require.NoError(t, hostfuncs.WriteString(c.Memory, c.Arg(1), int(c.Int(2)), "ui_menu"))
			return 0
		}),
	)
	require.NoError(t, err)
	mod := echoGuest(t, registry)

	got, err := syscall(ctx, mod, entities.ImportPrint, testutil.EchoHello)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got)
	assert.Equal(t, []string{"hi\n"}, printed)

	got, err = syscall(ctx, mod, entities.ImportMilliseconds)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), got)

	_, err = syscall(ctx, mod, entities.ImportArgv, 0, testutil.EchoScratch, 4)
	require.NoError(t, err)
	buf, ok := mod.Memory().Read(testutil.EchoScratch, 4)
	require.True(t, ok)
	assert.Equal(t, []byte("ui_\x00"), buf)
}

func TestRegisterWithRuntime_UnhandledImport(t *testing.T) {
	registry, err := hostfuncs.NewRegistry()
	require.NoError(t, err)
	mod := echoGuest(t, registry)

	got, err := syscall(context.Background(), mod, entities.ImportLANGetPing)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got)
}

func TestRegisterWithRuntime_AbortUnwindsGuest(t *testing.T) {
	engine := hostfuncs.NewEngine(hostfuncs.WithConsole(hostfuncs.NewScrollback(0)))
	registry, err := hostfuncs.NewRegistry(hostfuncs.WithBundle(hostfuncs.ConsoleBundle(engine)))
	require.NoError(t, err)
	mod := echoGuest(t, registry)

	_, err = syscall(context.Background(), mod, entities.ImportError, testutil.EchoHello)
	require.Error(t, err)

	var abort *hostfuncs.HostAbort
	require.True(t, errors.As(err, &abort), "got %v", err)
	assert.Equal(t, "hi\n", abort.Message)
}
