// Package common defines shared constants and sentinel errors used across
// the eduhub server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrEmailTaken     = errors.New("email already registered")

	// Credential errors. A malformed stored digest means the row is corrupt.
	ErrMalformedHash = errors.New("malformed password hash")

	// Token errors. All of them surface as the same rejection at the HTTP
	// boundary and differ only in logs.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)
