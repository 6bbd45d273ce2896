package reservation

import (
	"errors"
	"fmt"
)

// Error codes returned to clients. These strings are part of the wire
// contract and must remain stable.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyCanceled = "ALREADY_CANCELED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternal        = "INTERNAL"
)

// Error is a classified reservation failure. Every failure that leaves the
// service carries one of the codes above.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newValidationError(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidationError, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a classified *Error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr, true
	}
	return nil, false
}
