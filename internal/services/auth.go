// Package services contains the application services that orchestrate
// safekeep's credential, lockout, and vault operations for the CLI.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkrasnov/safekeep/internal/common"
	"github.com/dkrasnov/safekeep/internal/cryptox"
	"github.com/dkrasnov/safekeep/internal/logging"
	"github.com/dkrasnov/safekeep/internal/repositories/accounts"
	"github.com/dkrasnov/safekeep/internal/session"
)

// AuthService handles registration and login against the account store.
//
// Contract:
//   - Register: create an account; a duplicate username is a recoverable
//     conflict (common.ErrAlreadyExists), not a fatal error.
//   - Login: a locked session is rejected with common.ErrLocked before
//     credentials are evaluated; a credential failure advances the
//     session's lockout state and returns common.ErrInvalidCredentials.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, sess *session.Session, username, password string) error
	AttemptsLeft(sess *session.Session) int
}

type authService struct {
	repo        accounts.Repository
	params      cryptox.Params
	maxAttempts int
	lockFor     time.Duration
	log         logging.Logger
}

// NewAuthService constructs an AuthService bound to the given account
// store and key-derivation parameters.
func NewAuthService(repo accounts.Repository, params cryptox.Params, maxAttempts int, lockFor time.Duration, log logging.Logger) AuthService {
	return &authService{
		repo:        repo,
		params:      params,
		maxAttempts: maxAttempts,
		lockFor:     lockFor,
		log:         log.With("service", "auth"),
	}
}

// Register validates the input, hashes the password, and inserts the new
// account with an empty entry list. The plaintext password is never
// stored.
func (s *authService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrMissingFields
	}

	hash := cryptox.HashPassword(password, s.params)
	if err := s.repo.Create(ctx, username, hash); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("creating account: %w", err)
	}

	s.log.Info(ctx, "account registered", "username", username)
	return nil
}

// Login authenticates username/password against the stored digest.
//
// A locked session is rejected with common.ErrLocked without consulting
// the account store. Unknown usernames and wrong passwords are both
// reported as common.ErrInvalidCredentials so the caller cannot tell
// them apart; either outcome advances the lockout counter.
func (s *authService) Login(ctx context.Context, sess *session.Session, username, password string) error {
	if sess.Locked() {
		return common.ErrLocked
	}

	acc, err := s.repo.Get(ctx, username)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("loading account: %w", err)
	}

	if err == nil && cryptox.VerifyPassword(password, acc.PasswordHash, s.params) {
		sess.RecordSuccess(username)
		s.log.Info(ctx, "login ok", "username", username)
		return nil
	}

	locked := sess.RecordFailure(s.maxAttempts, s.lockFor)
	s.log.Warn(ctx, "login failed", "username", username,
		"attempts", sess.FailedAttempts, "locked", locked)
	return common.ErrInvalidCredentials
}

// AttemptsLeft returns how many further failures the session can absorb
// before locking. After an expired lockout the counter is not reset, so
// the raw value can go negative; it is clamped at zero for display.
func (s *authService) AttemptsLeft(sess *session.Session) int {
	left := s.maxAttempts - sess.FailedAttempts
	if left < 0 {
		return 0
	}
	return left
}
