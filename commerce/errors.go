// Package commerce holds the error taxonomy and validation helpers shared by
// the promotion, product and store packages.
package commerce

import (
	"errors"
	"fmt"
)

// StatusCode represents the category of a rejected operation.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
	StatusResourceExhausted
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	case StatusResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when an operation is rejected by business logic.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewInvalidArgument creates a CommandError for invalid input.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an INVALID_ARGUMENT error with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewFailedPrecondition creates a CommandError for violated preconditions.
func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf creates a CommandError with a formatted message.
func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewResourceExhaustedf creates a RESOURCE_EXHAUSTED error, used when stock
// cannot cover a request.
func NewResourceExhaustedf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusResourceExhausted, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the status code from err. The second result is false when
// err is not (and does not wrap) a *CommandError.
func CodeOf(err error) (StatusCode, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code, true
	}
	return 0, false
}

// HasCode reports whether err carries the given status code.
func HasCode(err error, code StatusCode) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
