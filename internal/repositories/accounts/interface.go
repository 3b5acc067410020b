// Package accounts persists the username-to-account mapping. Two
// implementations exist: a whole-file JSON store compatible with existing
// state files, and a SQLite store for installations that prefer a
// database file.
package accounts

import (
	"context"

	"github.com/dkrasnov/safekeep/internal/models"
)

// Repository is the load/save contract of the account store. Mutations
// are durable before the call returns. A single writer at a time is
// assumed; cross-process locking is out of scope.
type Repository interface {
	// Get returns the account for username, or common.ErrNotFound.
	Get(ctx context.Context, username string) (*models.Account, error)

	// Create inserts a new account with the given password hash and an
	// empty entry list. Returns common.ErrAlreadyExists when the
	// username is taken.
	Create(ctx context.Context, username string, passwordHash string) error

	// AppendEntry appends a ciphertext token to the account's entries,
	// preserving insertion order. Returns common.ErrNotFound for an
	// unknown username.
	AppendEntry(ctx context.Context, username string, token string) error
}
