// Package menu is the default UI served by the bridge: a menu state machine
// with a cursor and a background, drawing through the engine's renderer.
package menu

import (
	"log/slog"

	"github.com/q3ui/uibridge/domain/entities"
)

// Version is published to the engine in the ui_version cvar.
const Version = "uibridge 1.0"

// Asset names registered at init.
const (
	ShaderWhite  = "white"
	ShaderCursor = "menu/art/3_cursor2"
	SoundMove    = "sound/misc/menu1.wav"
)

// cvarROM marks a cvar the user cannot change.
const cvarROM = 0x0040

const cursorSize = 32

// Engine is the part of the syscall bridge the menu talks to.
type Engine interface {
	Print(text string)
	MemoryRemaining() int

	CvarSet(name, value string)
	CvarCreate(name, value string, flags int32)

	Argc() int
	Argv(n int) string

	KeyGetCatcher() int32
	KeySetCatcher(catcher int32)
	KeyClearStates()

	RegisterShaderNoMip(name string) entities.Handle
	SetColor(rgba *[4]float32)
	DrawStretchPic(x, y, w, h, s1, t1, s2, t2 float32, shader entities.Handle)
	RegisterSound(name string, compressed bool) entities.Handle
	StartLocalSound(sfx entities.Handle, channel int32)
}

var backgroundColor = [4]float32{0.1, 0.1, 0.2, 1}

// Menu implements ports.UI. The host drives it from a single thread, so it
// carries no locking.
type Menu struct {
	engine Engine
	logger *slog.Logger

	active     entities.MenuCommand
	inGameLoad bool
	realTime   int32
	frames     int
	cursorX    int32
	cursorY    int32

	white  entities.Handle
	cursor entities.Handle
	move   entities.Handle
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger used by the menu.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = l
	}
}

// New creates a menu drawing through e.
func New(e Engine, opts ...Option) *Menu {
	m := &Menu{engine: e, logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

func (m *Menu) reset() {
	m.active = entities.MenuNone
	m.inGameLoad = false
	m.realTime = 0
	m.frames = 0
	m.cursorX = entities.ScreenWidth / 2
	m.cursorY = entities.ScreenHeight / 2
}

// Init registers assets and publishes the version.
func (m *Menu) Init(inGameLoad bool) {
	m.reset()
	m.inGameLoad = inGameLoad
	m.cache()
	m.engine.CvarCreate("ui_version", Version, cvarROM)
	m.engine.Print("^2" + Version + " initialized\n")
	m.logger.Debug("menu initialized", "in_game_load", inGameLoad)
}

// cache registers every asset the menu draws with. It returns how many were
// found.
func (m *Menu) cache() int {
	m.white = m.engine.RegisterShaderNoMip(ShaderWhite)
	m.cursor = m.engine.RegisterShaderNoMip(ShaderCursor)
	m.move = m.engine.RegisterSound(SoundMove, false)

	found := 0
	for _, h := range []entities.Handle{m.white, m.cursor, m.move} {
		if h != 0 {
			found++
		}
	}
	return found
}

// Shutdown releases input and forgets all state.
func (m *Menu) Shutdown() {
	if m.active != entities.MenuNone {
		m.engine.KeySetCatcher(m.engine.KeyGetCatcher() &^ entities.KeyCatchUI)
	}
	m.reset()
	m.logger.Debug("menu shut down")
}

// Active returns the menu currently shown.
func (m *Menu) Active() entities.MenuCommand {
	return m.active
}

// Cursor returns the cursor position in virtual screen coordinates.
func (m *Menu) Cursor() (x, y int32) {
	return m.cursorX, m.cursorY
}

// Frames returns the number of frames drawn since init.
func (m *Menu) Frames() int {
	return m.frames
}

// SetActiveMenu switches menus and takes or releases keyboard input.
func (m *Menu) SetActiveMenu(menu entities.MenuCommand) {
	prev := m.active
	switch menu {
	case entities.MenuNone:
		m.engine.KeySetCatcher(m.engine.KeyGetCatcher() &^ entities.KeyCatchUI)
		m.engine.KeyClearStates()
		m.engine.CvarSet("cl_paused", "0")
	case entities.MenuInGame:
		m.engine.CvarSet("cl_paused", "1")
		m.engine.KeySetCatcher(entities.KeyCatchUI)
	default:
		m.engine.KeySetCatcher(entities.KeyCatchUI)
	}
	m.active = menu
	m.logger.Debug("active menu changed", "from", prev.String(), "to", menu.String())
}

// KeyEvent reacts to key presses. Releases are ignored.
func (m *Menu) KeyEvent(key int32, down bool) {
	if !down || m.active == entities.MenuNone {
		return
	}
	if m.move != 0 {
		m.engine.StartLocalSound(m.move, entities.ChanLocalSound)
	}
	if key == entities.KeyEscape && closable(m.active) {
		m.SetActiveMenu(entities.MenuNone)
	}
}

// closable reports whether escape leaves the menu and returns to the game.
func closable(menu entities.MenuCommand) bool {
	return menu == entities.MenuInGame || menu == entities.MenuTeam
}

// MouseEvent moves the cursor, clamped to the virtual screen.
func (m *Menu) MouseEvent(dx, dy int32) {
	if m.active == entities.MenuNone {
		return
	}
	m.cursorX = clamp(int64(m.cursorX)+int64(dx), entities.ScreenWidth-1)
	m.cursorY = clamp(int64(m.cursorY)+int64(dy), entities.ScreenHeight-1)
}

// clamp bounds v to [0, hi]. v is widened so a large delta cannot wrap.
func clamp(v, hi int64) int32 {
	return int32(max(0, min(v, hi)))
}

// Refresh draws one frame of the active menu.
func (m *Menu) Refresh(realTime int32) {
	m.realTime = realTime
	if m.active == entities.MenuNone {
		return
	}
	if m.IsFullscreen() {
		m.drawBackground()
	}
	const half = cursorSize / 2
	m.engine.DrawStretchPic(float32(m.cursorX-half), float32(m.cursorY-half), cursorSize, cursorSize, 0, 0, 1, 1, m.cursor)
	m.frames++
}

func (m *Menu) drawBackground() {
	c := backgroundColor
	m.engine.SetColor(&c)
	m.engine.DrawStretchPic(0, 0, entities.ScreenWidth, entities.ScreenHeight, 0, 0, 1, 1, m.white)
	m.engine.SetColor(nil)
}

// IsFullscreen reports whether the active menu hides the game view.
func (m *Menu) IsFullscreen() bool {
	switch m.active {
	case entities.MenuMain, entities.MenuNeedCD, entities.MenuBadCDKey:
		return true
	default:
		return false
	}
}

// DrawConnectScreen draws the loading background unless it is an overlay.
func (m *Menu) DrawConnectScreen(overlay bool) {
	if overlay {
		return
	}
	m.drawBackground()
}

// HasUniqueCDKey is false: the bridge uses the engine's key.
func (m *Menu) HasUniqueCDKey() bool {
	return false
}
