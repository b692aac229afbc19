package entities

// APIVersion is the reply to UI_GETAPIVERSION.
const APIVersion = 6

// Key catcher bits, as used by KEY_GETCATCHER and KEY_SETCATCHER.
const (
	KeyCatchConsole int32 = 0x0001
	KeyCatchUI      int32 = 0x0002
	KeyCatchMessage int32 = 0x0004
	KeyCatchCGame   int32 = 0x0008
)

// ExecWhen selects when CMD_EXECUTETEXT runs its text.
type ExecWhen int32

const (
	ExecNow    ExecWhen = iota // don't return until completed
	ExecInsert                 // insert at current position, but don't run yet
	ExecAppend                 // add to end of the command buffer
)

// Key numbers that the UI reacts to.
const (
	KeyTab    int32 = 9
	KeyEnter  int32 = 13
	KeyEscape int32 = 27
	KeySpace  int32 = 32
)

// ChanLocalSound is the sound channel used for menu feedback.
const ChanLocalSound int32 = 6

// Virtual screen size the UI draws in.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Handle identifies an engine resource such as a shader or sound.
// Zero is the engine's "not found" handle.
type Handle int32
