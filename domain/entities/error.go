package entities

import "fmt"

// ErrorDetail is the console-ready form of a bridge failure. Type is one of
// "protocol", "decode", "marshal", "host", "config" or "internal".
type ErrorDetail struct {
	Type    string
	Code    string
	Message string
	Fatal   bool // the current operation must halt
}

// Error renders "type: message [code]". The internal type is left out.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Type != "" && e.Type != "internal" {
		msg = e.Type + ": " + msg
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	return msg
}
