package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the internal absence signal returned by repositories.
// It is never surfaced to callers directly; services translate it into
// the typed taxonomy below.
var ErrNotFound = errors.New("not found")

// Code identifies a failure kind surfaced to callers. Codes are stable
// machine-readable strings; the message alongside them is for humans.
type Code string

const (
	CodeUnauthenticated    Code = "unauthenticated"
	CodePermissionDenied   Code = "permission-denied"
	CodeInvalidArgument    Code = "invalid-argument"
	CodeAlreadyExists      Code = "already-exists"
	CodeFailedPrecondition Code = "failed-precondition"
)

// Error is a typed failure carrying a code and a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error with the same code, so a specific-message error
// compares equal to its code's sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates a typed error with a specific message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrUnauthenticated  = &Error{CodeUnauthenticated, "You must be signed in to use this feature"}
	ErrPermissionDenied = &Error{CodePermissionDenied, "You must be an administrator to use this feature"}
	ErrInvalidArgument  = &Error{CodeInvalidArgument, "Invalid argument"}
	ErrAlreadyExists    = &Error{CodeAlreadyExists, "Already exists"}
	ErrNoProfile        = &Error{CodeFailedPrecondition, "You must have a public profile to use this feature"}
)
