package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/domain/entities"
	domainerrors "github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/internal/testutil"
	"github.com/q3ui/uibridge/syscalls"
	"github.com/q3ui/uibridge/wireformat"
)

func defaults(*syscalls.Bridge) (*config.Config, error) { return config.Defaults(), nil }

func TestLibrary_Session(t *testing.T) {
	host := testutil.NewRecordingHost()
	l := newLibrary(syscalls.New(), defaults)

	l.dllEntry(host)
	assert.Equal(t, entities.APIVersion, l.vmMain(int32(entities.ExportGetAPIVersion), wireformat.Args{}))

	l.vmMain(int32(entities.ExportInit), wireformat.MakeArgs(0))
	assert.Contains(t, host.Printed(), "^2uibridge 1.0 initialized\n")
}

func TestLibrary_VMMainBeforeDLLEntry(t *testing.T) {
	l := newLibrary(syscalls.New(), defaults)

	testutil.RequireFatal[*domainerrors.ProtocolError](t, func() {
		l.vmMain(int32(entities.ExportGetAPIVersion), wireformat.Args{})
	})
	testutil.RequireFatal[*domainerrors.ProtocolError](t, func() {
		l.vmMain(int32(entities.ExportInit), wireformat.Args{})
	})
}

func TestLibrary_VersionQueryHasNoSideEffect(t *testing.T) {
	host := testutil.NewRecordingHost()
	loads := 0
	l := newLibrary(syscalls.New(), func(*syscalls.Bridge) (*config.Config, error) {
		loads++
		return nil, errors.New("bad yaml")
	})

	l.dllEntry(host)
	assert.Equal(t, entities.APIVersion, l.vmMain(0, wireformat.MakeArgs(1, 2, 3)))
	assert.Equal(t, entities.APIVersion, l.vmMain(0, wireformat.Args{}))

	assert.Empty(t, host.Calls())
	assert.Zero(t, loads)
}

func TestLibrary_BadConfigWarnsOnInit(t *testing.T) {
	host := testutil.NewRecordingHost()
	loads := 0
	l := newLibrary(syscalls.New(), func(*syscalls.Bridge) (*config.Config, error) {
		loads++
		return nil, errors.New("no such cvar")
	})

	l.dllEntry(host)
	require.Equal(t, entities.APIVersion, l.vmMain(0, wireformat.Args{}))
	l.vmMain(int32(entities.ExportInit), wireformat.MakeArgs(0))
	l.vmMain(int32(entities.ExportShutdown), wireformat.Args{})

	assert.Equal(t, 1, loads)
	printed := host.Printed()
	require.NotEmpty(t, printed)
	assert.Contains(t, printed[0], "using default configuration")
	assert.Contains(t, printed[0], "no such cvar")
}

func TestLibrary_ReadsCvars(t *testing.T) {
	host := testutil.NewRecordingHost().Cvars(map[string]string{
		config.CvarLogLevel: "debug",
	})
	l := newLibrary(syscalls.New(), loadCvars)

	l.dllEntry(host)
	l.vmMain(int32(entities.ExportInit), wireformat.MakeArgs(0))

	ops := host.Ops()
	require.GreaterOrEqual(t, len(ops), 4)
	assert.Equal(t, []entities.Import{
		entities.ImportCvarVariableStringBuffer,
		entities.ImportCvarVariableStringBuffer,
		entities.ImportCvarVariableStringBuffer,
		entities.ImportCvarVariableStringBuffer,
	}, ops[:4])

	var debug bool
	for _, p := range host.Printed() {
		assert.NotContains(t, p, "using default configuration")
		if strings.Contains(p, "DEBUG") && strings.Contains(p, "menu initialized") {
			debug = true
		}
	}
	assert.True(t, debug, "debug records reach the console: %q", host.Printed())
}

func TestLibrary_DefaultUsesProcessBridge(t *testing.T) {
	assert.Same(t, syscalls.Default, lib.bridge)
}
