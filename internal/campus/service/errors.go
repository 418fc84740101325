package service

import (
	"errors"
	"fmt"
)

// Error kinds. The text of each sentinel is the stable code shown to clients.
var (
	ErrValidation         = errors.New("validation_error")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidSender      = errors.New("invalid_sender")
	ErrInvalidReceivers   = errors.New("invalid_receivers")
	ErrPersistence        = errors.New("persistence_error")
	ErrPartialWrite       = errors.New("partial_write")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountBlocked     = errors.New("account_blocked")
	ErrEmailTaken         = errors.New("email_taken")
	ErrForbidden          = errors.New("forbidden")
)

// parentKind lets a narrower kind also match the broader one it refines.
var parentKind = map[error]error{
	ErrEmailTaken: ErrPersistence,
}

// Error carries a kind, a message safe to show to users, and optionally the
// emails the failure concerns. The wrapped Err is for logs only.
type Error struct {
	Kind    error
	Message string
	Emails  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the error's kind, so errors.Is(err, ErrNotFound) works for any
// *Error of that kind.
func (e *Error) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	return parentKind[e.Kind] != nil && parentKind[e.Kind] == target
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func persistence(message string, err error) *Error {
	return wrapError(ErrPersistence, message, err)
}

// KindOf returns the kind of err, or ErrPersistence for anything that did not
// originate as an *Error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrPersistence
}

// AsError returns err as an *Error, wrapping unknown errors as persistence failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return persistence("An internal error occurred", err)
}
