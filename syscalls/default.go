package syscalls

import "github.com/q3ui/uibridge/domain/ports"

// Default is the process-wide bridge set by the exported load hook.
var Default = New()

// SetReference stores the capability on the Default bridge.
func SetReference(sys ports.Syscaller) {
	Default.SetReference(sys)
}

// Reference returns the Default bridge's capability.
func Reference() ports.Syscaller {
	return Default.Reference()
}

// Ready reports whether the Default bridge is usable.
func Ready() bool {
	return Default.Ready()
}

// Error reports a fatal error through the Default bridge. It never returns.
func Error(text string) {
	Default.Error(text)
}

// Print writes to the host console through the Default bridge.
func Print(text string) {
	Default.Print(text)
}

// Milliseconds returns the host clock through the Default bridge.
func Milliseconds() int {
	return Default.Milliseconds()
}
