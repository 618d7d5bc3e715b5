// Package errs defines the error taxonomy shared by the catalog, booking,
// checkout and auth layers. Handlers map these onto HTTP status codes.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUpstream     = errors.New("upstream failure")
	ErrAuth         = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a caller-facing message and wraps one of the sentinel kinds
// so callers can branch with errors.Is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...any) error {
	return &Error{kind: ErrInvalidState, msg: fmt.Sprintf(format, args...)}
}

func Upstreamf(format string, args ...any) error {
	return &Error{kind: ErrUpstream, msg: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) error {
	return &Error{kind: ErrAuth, msg: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return &Error{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }
func IsUpstream(err error) bool     { return errors.Is(err, ErrUpstream) }
func IsAuth(err error) bool         { return errors.Is(err, ErrAuth) }
func IsForbidden(err error) bool    { return errors.Is(err, ErrForbidden) }
