// Package common defines shared constants and sentinel errors used across
// client and server layers of NoteKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrStorage marks a local persistence fault. It is fatal to the single
	// operation that hit it, never to the process, and is not retried.
	ErrStorage = errors.New("storage error")

	// ErrRemoteUnavailable marks a network/backend fault: timeouts,
	// transport errors, server errors. Sync treats all of them the same.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrNotAuthenticated is returned when an operation that needs a current
	// owner runs without one. Storage is never touched in that case.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
