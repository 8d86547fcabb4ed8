// Package common defines shared constants and sentinel errors used across
// client and server layers of the intranet. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidLoginResponse means the server reported a successful login
	// but the response carried no token. This is a broken server contract,
	// not a wrong-password case.
	ErrInvalidLoginResponse = errors.New("no token in login response")

	// Account state errors.
	ErrAccountInactive = errors.New("account deactivated")
)
