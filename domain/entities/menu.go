package entities

import (
	"fmt"
	"strings"
)

// MenuCommand is the argument of UI_SET_ACTIVE_MENU (uiMenuCommand_t).
type MenuCommand int32

const (
	MenuNone MenuCommand = iota
	MenuMain
	MenuInGame
	MenuNeedCD
	MenuBadCDKey
	MenuTeam
	MenuPostGame

	menuCount
)

var menuNames = [menuCount]string{
	MenuNone:     "UIMENU_NONE",
	MenuMain:     "UIMENU_MAIN",
	MenuInGame:   "UIMENU_INGAME",
	MenuNeedCD:   "UIMENU_NEED_CD",
	MenuBadCDKey: "UIMENU_BAD_CD_KEY",
	MenuTeam:     "UIMENU_TEAM",
	MenuPostGame: "UIMENU_POSTGAME",
}

// Valid reports whether m is a known menu command.
func (m MenuCommand) Valid() bool {
	return m >= 0 && m < menuCount
}

func (m MenuCommand) String() string {
	if !m.Valid() {
		return fmt.Sprintf("UIMENU(%d)", int32(m))
	}
	return menuNames[m]
}

// ParseMenuCommand decodes the nested menu enumeration with the same strict
// contract as the primary opcode.
func ParseMenuCommand(v int32) (MenuCommand, error) {
	m := MenuCommand(v)
	if !m.Valid() {
		return 0, fmt.Errorf("unknown menu command %d", v)
	}
	return m, nil
}

// MenuCommands returns every menu command in ordinal order.
func MenuCommands() []MenuCommand {
	out := make([]MenuCommand, 0, menuCount)
	for m := MenuCommand(0); m < menuCount; m++ {
		out = append(out, m)
	}
	return out
}

// MenuByName finds a menu by its name, with or without the UIMENU_ prefix
// and in any case.
func MenuByName(name string) (MenuCommand, bool) {
	want := strings.ToUpper(name)
	if !strings.HasPrefix(want, "UIMENU_") {
		want = "UIMENU_" + want
	}
	for m, n := range menuNames {
		if n == want {
			return MenuCommand(m), true
		}
	}
	return 0, false
}
