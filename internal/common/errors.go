// Package common contains shared constants and sentinel errors used across
// Reflectometer components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrInvalidCredentials covers every authentication failure: unknown user,
	// wrong password, forged, malformed or expired token. The single value keeps
	// the failure modes indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDenied means the caller is authenticated but does not own the
	// resource chain, or the chain could not be resolved at all.
	ErrDenied = errors.New("denied")

	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation means the caller's input is malformed or incomplete.
	ErrValidation = errors.New("validation error")

	// ErrPayloadTooLarge means an inline curve payload exceeded the configured
	// limit; the caller should use the presigned blob upload instead.
	ErrPayloadTooLarge = errors.New("payload too large")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
