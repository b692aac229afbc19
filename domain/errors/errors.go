// Package errors provides the failure taxonomy of the UI bridge.
// All error types support error unwrapping via errors.As() and errors.Is().
// Every type here is terminal: the boundary has no transient failures.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/q3ui/uibridge/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// ProtocolError is a violation of the call order agreed with the host, such
// as a syscall before dllEntry or a second dllEntry.
type ProtocolError struct {
	Operation string
	Reason    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation in %s: %s", e.Operation, e.Reason)
}

// ToErrorDetail implements DetailedError.
func (e *ProtocolError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "protocol", Code: e.Operation, Fatal: true}
}

// DecodeError is an opcode or nested argument that does not belong to its
// enumeration.
type DecodeError struct {
	Err    error
	Field  string // "opcode" or the argument name
	Opcode int32
	Value  int32
}

func (e *DecodeError) Error() string {
	if e.Field == "" || e.Field == "opcode" {
		return fmt.Sprintf("cannot decode opcode %d: %v", e.Opcode, e.Err)
	}
	return fmt.Sprintf("cannot decode %s=%d for opcode %d: %v", e.Field, e.Value, e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *DecodeError) ToErrorDetail() *entities.ErrorDetail {
	code := e.Field
	if code == "" {
		code = "opcode"
	}
	return &entities.ErrorDetail{Message: e.Error(), Type: "decode", Code: code, Fatal: true}
}

// MarshalError is text that cannot cross the boundary as a C string.
type MarshalError struct {
	Offset int // index of the first NUL byte
	Length int
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("text of length %d contains a NUL byte at offset %d", e.Length, e.Offset)
}

// ToErrorDetail implements DetailedError.
func (e *MarshalError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "marshal", Code: "embedded_nul", Fatal: true}
}

// HostError is raised after the host error syscall returned control, which
// the host promises never to do.
type HostError struct {
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("unrecoverable error occurred: %s", e.Message)
}

// ToErrorDetail implements DetailedError.
func (e *HostError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "host", Code: "error_returned", Fatal: true}
}

// Unwinder is a panic value raised by the host's own error path while it
// unwinds the library. It has been reported already and must travel up
// untouched.
type Unwinder interface {
	error
	Unwinding()
}

// IsUnwinding reports whether err is, or wraps, an Unwinder or a HostError.
func IsUnwinding(err error) bool {
	var u Unwinder
	if stdErrors.As(err, &u) {
		return true
	}
	var he *HostError
	return stdErrors.As(err, &he)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// Describe renders a recovered panic value as text for the host console.
func Describe(recovered any) string {
	switch v := recovered.(type) {
	case nil:
		return "panic recovered"
	case error:
		return ToErrorDetail(v).Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsFatal reports whether err carries a fatal detail.
func IsFatal(err error) bool {
	d := ToErrorDetail(err)
	return d != nil && d.Fatal
}
