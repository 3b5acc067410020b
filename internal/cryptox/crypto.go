// Package cryptox implements the credential and encryption primitives of
// safekeep: PBKDF2 password hashing and verification, passphrase key
// derivation, and the authenticated token cipher used for stored entries.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLen is the derived symmetric key length in bytes (AES-256).
	KeyLen = 32

	defaultIterations = 100000
)

// defaultSalt is the application-wide salt carried over from earlier
// deployments. A single shared salt is a known weakness compared to a
// per-account random salt, but existing state files are only verifiable
// and decryptable with it, so it stays the default. Supply different
// Params for a hardened installation.
var defaultSalt = []byte("secure_salt_value")

// Params configures the key-derivation primitives. The same Params must
// be used for hashing and verification, and for key derivation across
// encrypt and decrypt calls.
type Params struct {
	Salt       []byte
	Iterations int
}

// DefaultParams returns parameters compatible with existing state files:
// shared fixed salt, 100000 PBKDF2-HMAC-SHA256 iterations.
func DefaultParams() Params {
	return Params{Salt: defaultSalt, Iterations: defaultIterations}
}

// HashPassword computes the hex-encoded PBKDF2-HMAC-SHA256 digest of
// password. Deterministic for a given password and Params; the digest
// length equals sha256.Size.
func HashPassword(password string, p Params) string {
	d := pbkdf2.Key([]byte(password), p.Salt, p.Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(d)
}

// VerifyPassword reports whether password matches the stored digest.
// The comparison runs in constant time.
func VerifyPassword(password string, digest string, p Params) bool {
	candidate := HashPassword(password, p)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// DeriveKey derives the KeyLen-byte symmetric key for a passphrase.
//
// The key is recomputed on every call and never cached or persisted; only
// the passphrase, held transiently by the caller, can reconstruct it.
// DeriveKey is deterministic across calls and process restarts, which is
// what makes round-trip decryption of persisted tokens possible.
func DeriveKey(passphrase string, p Params) []byte {
	return pbkdf2.Key([]byte(passphrase), p.Salt, p.Iterations, KeyLen, sha256.New)
}
