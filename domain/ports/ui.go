package ports

import "github.com/q3ui/uibridge/domain/entities"

// UI is the set of handlers behind the gateway, one per host command.
// Implementations run on the host's thread and may call back into the host.
type UI interface {
	Init(inGameLoad bool)
	Shutdown()
	KeyEvent(key int32, down bool)
	MouseEvent(dx, dy int32)
	Refresh(realTime int32)
	IsFullscreen() bool
	SetActiveMenu(menu entities.MenuCommand)
	ConsoleCommand(realTime int32) bool
	DrawConnectScreen(overlay bool)
	HasUniqueCDKey() bool
}
