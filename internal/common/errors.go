// Package common contains shared helpers and sentinel errors used across
// safekeep layers. Callers should match the errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Controller-level errors. All of these are recoverable, user-visible
	// conditions; none is fatal to the process.
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLocked             = errors.New("too many failed attempts")
	ErrNotAuthenticated   = errors.New("login required")
)
