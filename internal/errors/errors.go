package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP boundary can map it to a status
// code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error carries a kind, a user-facing message and an optional cause.
// Kinds propagate unmodified to the boundary; only Internal masks its
// cause behind an opaque message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string) *Error   { return New(KindBadRequest, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf reports the kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Shared sentinel errors. Login failures for unknown email and wrong
// password share one message to avoid user enumeration.
var (
	ErrInvalidCredentials   = Unauthorized("invalid email or password")
	ErrEmailAlreadyInUse    = Conflict("email already registered")
	ErrSessionNotFound      = Unauthorized("no active session")
	ErrRefreshTokenMismatch = Unauthorized("refresh token mismatch")
	ErrTokenExpired         = Unauthorized("token has expired")
	ErrInvalidToken         = Unauthorized("invalid token")
)
