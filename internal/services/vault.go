package services

import (
	"context"
	"fmt"

	"github.com/dkrasnov/safekeep/internal/common"
	"github.com/dkrasnov/safekeep/internal/cryptox"
	"github.com/dkrasnov/safekeep/internal/logging"
	"github.com/dkrasnov/safekeep/internal/repositories/accounts"
	"github.com/dkrasnov/safekeep/internal/session"
)

// VaultService encrypts, stores, and decrypts entry payloads for the
// authenticated user. Keys are derived from the supplied passphrase on
// every call and discarded; neither the passphrase nor the key is ever
// persisted.
type VaultService interface {
	Store(ctx context.Context, sess *session.Session, plaintext, passphrase string) (string, error)
	Retrieve(ctx context.Context, sess *session.Session, token, passphrase string) (string, error)
	List(ctx context.Context, sess *session.Session) ([]string, error)
}

type vaultService struct {
	repo   accounts.Repository
	params cryptox.Params
	log    logging.Logger
}

func NewVaultService(repo accounts.Repository, params cryptox.Params, log logging.Logger) VaultService {
	return &vaultService{repo: repo, params: params, log: log.With("service", "vault")}
}

// Store derives a key from passphrase, encrypts plaintext, and appends
// the resulting token to the session user's entries. Both fields are
// required.
func (s *vaultService) Store(ctx context.Context, sess *session.Session, plaintext, passphrase string) (string, error) {
	if !sess.IsAuthenticated() {
		return "", common.ErrNotAuthenticated
	}
	if plaintext == "" || passphrase == "" {
		return "", common.ErrMissingFields
	}

	key := cryptox.DeriveKey(passphrase, s.params)
	token, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return "", fmt.Errorf("encrypting entry: %w", err)
	}

	if err := s.repo.AppendEntry(ctx, sess.AuthenticatedUser, token); err != nil {
		return "", fmt.Errorf("saving entry: %w", err)
	}

	s.log.Info(ctx, "entry stored", "username", sess.AuthenticatedUser)
	return token, nil
}

// Retrieve decrypts a token with a key derived from passphrase. Wrong
// passphrases and tampered or malformed tokens all come back as
// cryptox.ErrDecryptionFailed.
func (s *vaultService) Retrieve(ctx context.Context, sess *session.Session, token, passphrase string) (string, error) {
	if !sess.IsAuthenticated() {
		return "", common.ErrNotAuthenticated
	}

	key := cryptox.DeriveKey(passphrase, s.params)
	plaintext, err := cryptox.Decrypt(token, key)
	if err != nil {
		s.log.Warn(ctx, "decryption failed", "username", sess.AuthenticatedUser)
		return "", err
	}
	return plaintext, nil
}

// List returns the session user's stored tokens in insertion order.
func (s *vaultService) List(ctx context.Context, sess *session.Session) ([]string, error) {
	if !sess.IsAuthenticated() {
		return nil, common.ErrNotAuthenticated
	}

	acc, err := s.repo.Get(ctx, sess.AuthenticatedUser)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	return acc.Entries, nil
}
