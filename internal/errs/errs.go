// Package errs defines the coded errors shared by the settings store, the
// repository gateway and the link manager.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies an error category independently of its message.
type Code string

const (
	NotInitialized   Code = "NOT_INITIALIZED"
	InvalidRepoState Code = "INVALID_REPO_STATE"
	RemoteMismatch   Code = "REMOTE_MISMATCH"
	IO               Code = "IO"
	GitCommandFailed Code = "GIT_COMMAND_FAILED"
	InvalidInput     Code = "INVALID_INPUT"
)

// Error is a categorized error. Stderr is only set for GitCommandFailed.
type Error struct {
	Code    Code
	Message string
	Stderr  string
	Wrapped error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code, so callers can write
// errors.Is(err, errs.New(errs.RemoteMismatch, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err. Returns nil when err is nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps err with a formatted message. Returns nil when err is nil.
func Wrapf(err error, code Code, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// GitFailed reports a git invocation that exited non-zero.
func GitFailed(command string, exitCode int, stderr string) *Error {
	return &Error{
		Code:    GitCommandFailed,
		Message: fmt.Sprintf("%s exited with status %d", command, exitCode),
		Stderr:  stderr,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err's chain contains an *Error with code.
func HasCode(err error, code Code) bool {
	return errors.Is(err, &Error{Code: code})
}
