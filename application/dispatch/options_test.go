package dispatch

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/q3ui/uibridge/application/config"
	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/internal/testutil"
	"github.com/q3ui/uibridge/syscalls"
	"github.com/q3ui/uibridge/wireformat"
)

func TestFromConfig(t *testing.T) {
	bridge := syscalls.New()
	logger := slog.Default()

	assert.Len(t, FromConfig(config.DispatchConfig{}, bridge, logger), 2)
	assert.Len(t, FromConfig(config.DispatchConfig{ReportPanics: true}, bridge, logger), 3)
	assert.Len(t, FromConfig(config.DispatchConfig{ReportPanics: true, Trace: true}, bridge, logger), 4)
}

func TestFromConfig_ReportsAndTraces(t *testing.T) {
	host := testutil.NewRecordingHost()
	bridge := syscalls.New()
	bridge.SetReference(host)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ui := new(mockUI)
	ui.On("HasUniqueCDKey").Return(false)
	ui.On("KeyEvent", int32(13), true).Run(func(mock.Arguments) { panic("stuck key") })

	cfg := config.DispatchConfig{ReportPanics: true, Trace: true}
	g := New(ui, FromConfig(cfg, bridge, logger)...)

	assert.Equal(t, 0, g.Dispatch(entities.HasUniqueCDKey{}))
	assert.Contains(t, buf.String(), "op=UI_HASUNIQUECDKEY")

	testutil.RequireFatal[*errors.HostError](t, func() {
		g.Handle(int32(entities.ExportKeyEvent), wireformat.MakeArgs(13, 1))
	})
	assert.Equal(t, []string{"UI_KEY_EVENT: stuck key"}, host.Errors())
}
