package wireformat

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
)

func TestDecode_EveryOpcode(t *testing.T) {
	tests := []struct {
		opcode int32
		args   Args
		want   entities.Command
	}{
		{0, Args{}, entities.GetAPIVersion{}},
		{1, MakeArgs(1), entities.Init{InGameLoad: true}},
		{2, Args{}, entities.Shutdown{}},
		{3, MakeArgs(entities.KeyEscape, 1), entities.KeyEvent{Key: entities.KeyEscape, Down: true}},
		{4, MakeArgs(-3, 5), entities.MouseEvent{DX: -3, DY: 5}},
		{5, MakeArgs(1234), entities.Refresh{RealTime: 1234}},
		{6, Args{}, entities.IsFullscreen{}},
		{7, MakeArgs(2), entities.SetActiveMenu{Menu: entities.MenuInGame}},
		{8, MakeArgs(99), entities.ConsoleCommand{RealTime: 99}},
		{9, MakeArgs(0), entities.DrawConnectScreen{Overlay: false}},
		{10, Args{}, entities.HasUniqueCDKey{}},
	}

	require.Len(t, tests, len(entities.Exports()))
	for _, tt := range tests {
		t.Run(entities.Export(tt.opcode).String(), func(t *testing.T) {
			got, err := Decode(tt.opcode, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, entities.Export(tt.opcode), got.Opcode())
		})
	}
}

func TestDecode_IgnoresUnusedSlots(t *testing.T) {
	got, err := Decode(int32(entities.ExportShutdown), MakeArgs(9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9))
	require.NoError(t, err)
	assert.Equal(t, entities.Shutdown{}, got)
}

func TestDecode_UnknownOpcode(t *testing.T) {
	for _, opcode := range []int32{-1, 11, 12, 1000} {
		_, err := Decode(opcode, Args{})
		require.Error(t, err)

		var de *errors.DecodeError
		require.True(t, stdErrors.As(err, &de))
		assert.Equal(t, "opcode", de.Field)
		assert.Equal(t, opcode, de.Opcode)
		assert.True(t, errors.IsFatal(err))
	}
}

func TestDecode_UnknownMenu(t *testing.T) {
	for _, menu := range []int32{-1, 7, 42} {
		_, err := Decode(int32(entities.ExportSetActiveMenu), MakeArgs(menu))

		var de *errors.DecodeError
		require.True(t, stdErrors.As(err, &de))
		assert.Equal(t, "menu", de.Field)
		assert.Equal(t, menu, de.Value)
		assert.Equal(t, int32(entities.ExportSetActiveMenu), de.Opcode)
	}
}

func TestDecode_BooleanRule(t *testing.T) {
	for _, tt := range []struct {
		raw  int32
		want bool
	}{{0, false}, {1, true}, {-1, true}, {42, true}} {
		in, err := Decode(int32(entities.ExportInit), MakeArgs(tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, in.(entities.Init).InGameLoad, "init %d", tt.raw)

		key, err := Decode(int32(entities.ExportKeyEvent), MakeArgs(65, tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, key.(entities.KeyEvent).Down, "key %d", tt.raw)

		draw, err := Decode(int32(entities.ExportDrawConnectScreen), MakeArgs(tt.raw))
		require.NoError(t, err)
		assert.Equal(t, tt.want, draw.(entities.DrawConnectScreen).Overlay, "connect %d", tt.raw)
	}
}

func TestEncode_DecodeInverse(t *testing.T) {
	cmds := []entities.Command{
		entities.GetAPIVersion{},
		entities.Init{InGameLoad: true},
		entities.Shutdown{},
		entities.KeyEvent{Key: entities.KeyEnter, Down: false},
		entities.MouseEvent{DX: 10, DY: -10},
		entities.Refresh{RealTime: 5000},
		entities.IsFullscreen{},
		entities.SetActiveMenu{Menu: entities.MenuPostGame},
		entities.ConsoleCommand{RealTime: 1},
		entities.DrawConnectScreen{Overlay: true},
		entities.HasUniqueCDKey{},
	}
	for _, cmd := range cmds {
		opcode, args := Encode(cmd)
		got, err := Decode(opcode, args)
		require.NoError(t, err)
		assert.Equal(t, cmd, got)
	}
}

func TestMakeArgs(t *testing.T) {
	assert.Equal(t, Args{1, 2}, MakeArgs(1, 2))
	assert.Panics(t, func() { MakeArgs(make([]int32, 13)...) })
}

func TestResult(t *testing.T) {
	assert.Equal(t, 1, Result(true))
	assert.Equal(t, 0, Result(false))
}
