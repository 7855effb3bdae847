package errorz

import "errors"

// Code is a stable, machine-readable error category. The transport layer
// maps codes to status codes; messages are for humans.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInvalidState Code = "INVALID_STATE"
	CodeValidation   Code = "VALIDATION"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Code: CodeInvalidState, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// CodeOf returns the code of a domain error, or "" for any other error.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func IsNotFound(err error) bool     { return CodeOf(err) == CodeNotFound }
func IsConflict(err error) bool     { return CodeOf(err) == CodeConflict }
func IsInvalidState(err error) bool { return CodeOf(err) == CodeInvalidState }
func IsValidation(err error) bool   { return CodeOf(err) == CodeValidation }
