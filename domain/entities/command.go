package entities

// Command is one decoded host→library call. The set of implementations is
// closed; each carries the typed arguments of exactly one Export.
type Command interface {
	Opcode() Export
	command()
}

// GetAPIVersion asks for the library's API version.
type GetAPIVersion struct{}

// Init starts the UI. InGameLoad is set when a map is already running.
type Init struct {
	InGameLoad bool
}

// Shutdown stops the UI.
type Shutdown struct{}

// KeyEvent reports a key transition.
type KeyEvent struct {
	Key  int32
	Down bool
}

// MouseEvent reports relative mouse motion.
type MouseEvent struct {
	DX int32
	DY int32
}

// Refresh asks the UI to draw a frame.
type Refresh struct {
	RealTime int32
}

// IsFullscreen asks whether the active menu covers the whole screen.
type IsFullscreen struct{}

// SetActiveMenu switches the active menu.
type SetActiveMenu struct {
	Menu MenuCommand
}

// ConsoleCommand offers the current console command to the UI.
type ConsoleCommand struct {
	RealTime int32
}

// DrawConnectScreen draws the connection screen. When Overlay is false the
// background is drawn too.
type DrawConnectScreen struct {
	Overlay bool
}

// HasUniqueCDKey asks whether the mod uses its own cd key.
type HasUniqueCDKey struct{}

func (GetAPIVersion) Opcode() Export     { return ExportGetAPIVersion }
func (Init) Opcode() Export              { return ExportInit }
func (Shutdown) Opcode() Export          { return ExportShutdown }
func (KeyEvent) Opcode() Export          { return ExportKeyEvent }
func (MouseEvent) Opcode() Export        { return ExportMouseEvent }
func (Refresh) Opcode() Export           { return ExportRefresh }
func (IsFullscreen) Opcode() Export      { return ExportIsFullscreen }
func (SetActiveMenu) Opcode() Export     { return ExportSetActiveMenu }
func (ConsoleCommand) Opcode() Export    { return ExportConsoleCommand }
func (DrawConnectScreen) Opcode() Export { return ExportDrawConnectScreen }
func (HasUniqueCDKey) Opcode() Export    { return ExportHasUniqueCDKey }

func (GetAPIVersion) command()     {}
func (Init) command()              {}
func (Shutdown) command()          {}
func (KeyEvent) command()          {}
func (MouseEvent) command()        {}
func (Refresh) command()           {}
func (IsFullscreen) command()      {}
func (SetActiveMenu) command()     {}
func (ConsoleCommand) command()    {}
func (DrawConnectScreen) command() {}
func (HasUniqueCDKey) command()    {}
