package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code identifies the class of an AppError, independent of its message.
type Code string

const (
	// CodeInvalidArgument marks a caller-supplied value that failed validation.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeInvalidConfiguration marks a constructor-time configuration error.
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// CodeInternal marks a condition that should be impossible to reach from
	// correct callers; treated as fatal where it's asserted against.
	CodeInternal Code = "INTERNAL"
)

// AppError is a structured error carrying a stable Code alongside a
// human-readable Message and an optional wrapped cause.
type AppError struct {
	Code    Code
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As can see through it.
func (e *AppError) Unwrap() error {
	return e.cause
}

// New constructs an AppError with no wrapped cause. The stack is captured at
// the call site via github.com/pkg/errors so the original failure site is
// recoverable even after the error has been passed up several call frames.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, cause: pkgerrors.New(message)}
}

// Wrap constructs an AppError that chains an underlying cause. If cause is
// nil, Wrap behaves like New.
func Wrap(code Code, message string, cause error) *AppError {
	if cause == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, cause: pkgerrors.Wrap(cause, message)}
}

// InvalidArgument builds a CodeInvalidArgument error.
func InvalidArgument(message string, cause error) *AppError {
	return Wrap(CodeInvalidArgument, message, cause)
}

// InvalidConfiguration builds a CodeInvalidConfiguration error.
func InvalidConfiguration(message string, cause error) *AppError {
	return Wrap(CodeInvalidConfiguration, message, cause)
}

// Internal builds a CodeInternal error.
func Internal(message string, cause error) *AppError {
	return Wrap(CodeInternal, message, cause)
}

// CodeOf returns the Code carried by err, or "" if err is not an *AppError
// (or does not wrap one).
func CodeOf(err error) Code {
	var appErr *AppError
	for err != nil {
		if ae, ok := err.(*AppError); ok {
			appErr = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if appErr == nil {
		return ""
	}
	return appErr.Code
}
