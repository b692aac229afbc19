package menu

import (
	"fmt"
	"strings"

	"github.com/q3ui/uibridge/domain/entities"
)

// ConsoleCommand handles the UI's own console commands and reports whether
// the current command was one of them.
func (m *Menu) ConsoleCommand(realTime int32) bool {
	m.realTime = realTime
	if m.engine.Argc() == 0 {
		return false
	}

	switch strings.ToLower(m.engine.Argv(0)) {
	case "ui_report":
		m.report()
	case "ui_cache":
		found := m.cache()
		m.engine.Print(fmt.Sprintf("%d of 3 ui assets cached\n", found))
	case "ui_menu":
		m.menuCommand()
	default:
		return false
	}
	return true
}

func (m *Menu) report() {
	m.engine.Print(fmt.Sprintf(
		"%s\nactive: %s\ncursor: %d %d\nframes: %d\ntime: %d\nhunk free: %d\n",
		Version, m.active, m.cursorX, m.cursorY, m.frames, m.realTime, m.engine.MemoryRemaining()))
}

// menuCommand implements "ui_menu <name>", switching menus by name.
func (m *Menu) menuCommand() {
	if m.engine.Argc() < 2 {
		m.engine.Print("usage: ui_menu <none|main|ingame|need_cd|bad_cd_key|team|postgame>\n")
		return
	}
	if menu, ok := entities.MenuByName(m.engine.Argv(1)); ok {
		m.SetActiveMenu(menu)
		return
	}
	m.engine.Print(fmt.Sprintf("unknown menu %q\n", m.engine.Argv(1)))
}
