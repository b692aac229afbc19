package entities

import "fmt"

// Export is an opcode of the host→library space, the first argument of vmMain.
type Export int32

// Host→library opcodes. Values are fixed by the engine.
const (
	ExportGetAPIVersion     Export = iota // system reserved
	ExportInit                            // void UI_Init( qboolean inGameLoad )
	ExportShutdown                        // void UI_Shutdown( void )
	ExportKeyEvent                        // void UI_KeyEvent( int key, qboolean down )
	ExportMouseEvent                      // void UI_MouseEvent( int dx, int dy )
	ExportRefresh                         // void UI_Refresh( int time )
	ExportIsFullscreen                    // qboolean UI_IsFullscreen( void )
	ExportSetActiveMenu                   // void UI_SetActiveMenu( uiMenuCommand_t menu )
	ExportConsoleCommand                  // qboolean UI_ConsoleCommand( int realTime )
	ExportDrawConnectScreen               // void UI_DrawConnectScreen( qboolean overlay )
	ExportHasUniqueCDKey                  // qboolean UI_HasUniqueCDKey( void )

	exportCount
)

var exportNames = [exportCount]string{
	ExportGetAPIVersion:     "UI_GETAPIVERSION",
	ExportInit:              "UI_INIT",
	ExportShutdown:          "UI_SHUTDOWN",
	ExportKeyEvent:          "UI_KEY_EVENT",
	ExportMouseEvent:        "UI_MOUSE_EVENT",
	ExportRefresh:           "UI_REFRESH",
	ExportIsFullscreen:      "UI_IS_FULLSCREEN",
	ExportSetActiveMenu:     "UI_SET_ACTIVE_MENU",
	ExportConsoleCommand:    "UI_CONSOLE_COMMAND",
	ExportDrawConnectScreen: "UI_DRAW_CONNECT_SCREEN",
	ExportHasUniqueCDKey:    "UI_HASUNIQUECDKEY",
}

// Valid reports whether e is a member of the host→library space.
func (e Export) Valid() bool {
	return e >= 0 && e < exportCount
}

func (e Export) String() string {
	if !e.Valid() {
		return fmt.Sprintf("UI_EXPORT(%d)", int32(e))
	}
	return exportNames[e]
}

// ParseExport decodes a raw opcode. Unknown values are rejected rather than
// mapped to a neighbouring command.
func ParseExport(v int32) (Export, error) {
	e := Export(v)
	if !e.Valid() {
		return 0, fmt.Errorf("unknown ui export opcode %d", v)
	}
	return e, nil
}

// Exports returns every host→library opcode in ordinal order.
func Exports() []Export {
	out := make([]Export, 0, exportCount)
	for e := Export(0); e < exportCount; e++ {
		out = append(out, e)
	}
	return out
}
