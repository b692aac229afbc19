package menu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/q3ui/uibridge/domain/entities"
	"github.com/q3ui/uibridge/internal/abi"
	"github.com/q3ui/uibridge/internal/testutil"
	"github.com/q3ui/uibridge/syscalls"
)

type MenuSuite struct {
	suite.Suite
	host *testutil.RecordingHost
	menu *Menu
	argv []string
}

func (s *MenuSuite) SetupTest() {
	s.argv = nil
	s.host = testutil.NewRecordingHost().
		Script(entities.ImportRRegisterShaderNoMip, 1, 2).
		Script(entities.ImportSRegisterSound, 3).
		Script(entities.ImportMemoryRemaining, 4096)
	s.host.Handle(entities.ImportArgc, func([]uintptr) uintptr {
		return uintptr(len(s.argv))
	})
	s.host.Handle(entities.ImportArgv, func(args []uintptr) uintptr {
		word := ""
		if int(args[0]) < len(s.argv) {
			word = s.argv[args[0]]
		}
		abi.WriteCString(args[1], int(args[2]), word)
		return 0
	})

	bridge := syscalls.New()
	bridge.SetReference(s.host)
	s.menu = New(bridge)
}

func (s *MenuSuite) opCount(op entities.Import) int {
	n := 0
	for _, o := range s.host.Ops() {
		if o == op {
			n++
		}
	}
	return n
}

func (s *MenuSuite) TestInit() {
	s.menu.Init(true)

	s.Equal([]entities.Import{
		entities.ImportRRegisterShaderNoMip,
		entities.ImportRRegisterShaderNoMip,
		entities.ImportSRegisterSound,
		entities.ImportCvarCreate,
		entities.ImportPrint,
	}, s.host.Ops())

	calls := s.host.Calls()
	s.Equal([]string{ShaderWhite}, calls[0].Text)
	s.Equal([]string{ShaderCursor}, calls[1].Text)
	s.Equal([]string{"ui_version", Version}, calls[3].Text)
	s.Equal([]string{"^2" + Version + " initialized\n"}, s.host.Printed())
	s.Equal(entities.MenuNone, s.menu.Active())
}

func (s *MenuSuite) TestSetActiveMenu_MainTakesInput() {
	s.menu.SetActiveMenu(entities.MenuMain)

	s.Equal(entities.MenuMain, s.menu.Active())
	s.True(s.menu.IsFullscreen())
	calls := s.host.Calls()
	s.Require().Len(calls, 1)
	s.Equal(entities.ImportKeySetCatcher, calls[0].Op)
	s.Equal([]int64{int64(entities.KeyCatchUI)}, calls[0].Args)
}

func (s *MenuSuite) TestSetActiveMenu_InGamePauses() {
	s.menu.SetActiveMenu(entities.MenuInGame)

	s.False(s.menu.IsFullscreen())
	calls := s.host.Calls()
	s.Require().Len(calls, 2)
	s.Equal([]string{"cl_paused", "1"}, calls[0].Text)
	s.Equal(entities.ImportKeySetCatcher, calls[1].Op)
}

func (s *MenuSuite) TestSetActiveMenu_NoneReleases() {
	s.host.Script(entities.ImportKeyGetCatcher, uintptr(entities.KeyCatchUI|entities.KeyCatchConsole))
	s.menu.SetActiveMenu(entities.MenuInGame)
	s.host.Reset()

	s.menu.SetActiveMenu(entities.MenuNone)

	calls := s.host.Calls()
	s.Require().Len(calls, 4)
	s.Equal(entities.ImportKeyGetCatcher, calls[0].Op)
	s.Equal([]int64{int64(entities.KeyCatchConsole)}, calls[1].Args)
	s.Equal(entities.ImportKeyClearStates, calls[2].Op)
	s.Equal([]string{"cl_paused", "0"}, calls[3].Text)
}

func (s *MenuSuite) TestKeyEvent() {
	s.menu.Init(false)
	s.menu.KeyEvent(entities.KeyEnter, true)
	s.Zero(s.opCount(entities.ImportSStartLocalSound), "no menu open")

	s.menu.SetActiveMenu(entities.MenuInGame)
	s.menu.KeyEvent(entities.KeyEnter, false)
	s.Zero(s.opCount(entities.ImportSStartLocalSound), "releases are ignored")

	s.menu.KeyEvent(entities.KeyEnter, true)
	s.Equal(1, s.opCount(entities.ImportSStartLocalSound))
	s.Equal(entities.MenuInGame, s.menu.Active())

	s.menu.KeyEvent(entities.KeyEscape, true)
	s.Equal(entities.MenuNone, s.menu.Active())
}

func (s *MenuSuite) TestKeyEvent_EscapeKeepsMainMenu() {
	s.menu.SetActiveMenu(entities.MenuMain)
	s.menu.KeyEvent(entities.KeyEscape, true)
	s.Equal(entities.MenuMain, s.menu.Active())
}

func (s *MenuSuite) TestMouseEvent_Clamps() {
	x, y := s.menu.Cursor()
	s.Equal(int32(320), x)
	s.Equal(int32(240), y)

	s.menu.MouseEvent(10, 10)
	x, _ = s.menu.Cursor()
	s.Equal(int32(320), x, "ignored while no menu is open")

	s.menu.SetActiveMenu(entities.MenuMain)
	s.menu.MouseEvent(-1000, 1000)
	x, y = s.menu.Cursor()
	s.Equal(int32(0), x)
	s.Equal(int32(entities.ScreenHeight-1), y)

	s.menu.MouseEvent(5000, -5)
	x, y = s.menu.Cursor()
	s.Equal(int32(entities.ScreenWidth-1), x)
	s.Equal(int32(entities.ScreenHeight-6), y)
}

func (s *MenuSuite) TestMouseEvent_LargeDeltaDoesNotWrap() {
	s.menu.SetActiveMenu(entities.MenuMain)
	s.menu.MouseEvent(math.MaxInt32, math.MinInt32)
	x, y := s.menu.Cursor()
	s.Equal(int32(entities.ScreenWidth-1), x)
	s.Equal(int32(0), y)

	s.menu.MouseEvent(math.MaxInt32, math.MaxInt32)
	x, y = s.menu.Cursor()
	s.Equal(int32(entities.ScreenWidth-1), x)
	s.Equal(int32(entities.ScreenHeight-1), y)
}

func (s *MenuSuite) TestRefresh() {
	s.menu.Init(false)
	s.menu.Refresh(100)
	s.Zero(s.menu.Frames())

	s.menu.SetActiveMenu(entities.MenuMain)
	s.host.Reset()
	s.menu.Refresh(116)

	s.Equal(1, s.menu.Frames())
	s.Equal([]entities.Import{
		entities.ImportRSetColor,
		entities.ImportRDrawStretchPic,
		entities.ImportRSetColor,
		entities.ImportRDrawStretchPic,
	}, s.host.Ops())
	calls := s.host.Calls()
	s.Equal(backgroundColor[:], calls[0].Floats)
	s.Equal(int64(1), calls[1].Args[8], "background uses the white shader")
	s.Equal(int64(2), calls[3].Args[8], "cursor shader")
	s.Equal(int64(abi.Float(304)), calls[3].Args[0])
}

func (s *MenuSuite) TestRefresh_InGameSkipsBackground() {
	s.menu.SetActiveMenu(entities.MenuInGame)
	s.host.Reset()
	s.menu.Refresh(1)

	s.Equal([]entities.Import{entities.ImportRDrawStretchPic}, s.host.Ops())
}

func (s *MenuSuite) TestDrawConnectScreen() {
	s.menu.DrawConnectScreen(true)
	s.Empty(s.host.Calls())

	s.menu.DrawConnectScreen(false)
	s.Equal(1, s.opCount(entities.ImportRDrawStretchPic))
}

func (s *MenuSuite) TestHasUniqueCDKey() {
	s.False(s.menu.HasUniqueCDKey())
}

func (s *MenuSuite) TestShutdown() {
	s.menu.SetActiveMenu(entities.MenuMain)
	s.menu.Shutdown()

	s.Equal(entities.MenuNone, s.menu.Active())
	s.Equal(entities.ImportKeySetCatcher, s.host.Ops()[len(s.host.Ops())-1])
}

func (s *MenuSuite) TestConsoleCommand_Unknown() {
	s.argv = []string{"map", "q3dm17"}
	s.False(s.menu.ConsoleCommand(10))

	s.argv = nil
	s.False(s.menu.ConsoleCommand(11))
}

func (s *MenuSuite) TestConsoleCommand_Report() {
	s.argv = []string{"UI_REPORT"}
	s.True(s.menu.ConsoleCommand(42))

	printed := s.host.Printed()
	s.Require().Len(printed, 1)
	s.Contains(printed[0], "active: UIMENU_NONE")
	s.Contains(printed[0], "time: 42")
	s.Contains(printed[0], "hunk free: 4096")
}

func (s *MenuSuite) TestConsoleCommand_Cache() {
	s.argv = []string{"ui_cache"}
	s.True(s.menu.ConsoleCommand(1))
	s.Equal([]string{"3 of 3 ui assets cached\n"}, s.host.Printed())
}

func (s *MenuSuite) TestConsoleCommand_Menu() {
	s.argv = []string{"ui_menu", "team"}
	s.True(s.menu.ConsoleCommand(1))
	s.Equal(entities.MenuTeam, s.menu.Active())

	s.argv = []string{"ui_menu", "bogus"}
	s.True(s.menu.ConsoleCommand(2))
	s.Equal([]string{"unknown menu \"bogus\"\n"}, s.host.Printed())

	s.argv = []string{"ui_menu"}
	s.True(s.menu.ConsoleCommand(3))
	s.Len(s.host.Printed(), 2)
}

func TestMenuSuite(t *testing.T) {
	suite.Run(t, new(MenuSuite))
}
