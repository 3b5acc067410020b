package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	// tokenVersion is the first byte of every decoded token.
	tokenVersion = 0x01

	nonceSize = 12
)

// ErrDecryptionFailed covers every decryption failure: wrong key,
// tampered or truncated token, malformed encoding. Collapsing the causes
// into one sentinel keeps callers from learning which check failed.
var ErrDecryptionFailed = errors.New("decryption failed")

// Encrypt seals plaintext under key with AES-256-GCM and returns a
// self-contained text token: URL-safe base64 of
// version || nonce || ciphertext+tag. A fresh random nonce is generated
// per call, so encrypting the same plaintext twice yields different
// tokens that both decrypt to the same plaintext.
func Encrypt(plaintext string, key []byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce generation: %w", err)
	}

	buf := make([]byte, 0, 1+nonceSize+len(plaintext)+aead.Overhead())
	buf = append(buf, tokenVersion)
	buf = append(buf, nonce...)
	buf = aead.Seal(buf, nonce, []byte(plaintext), nil)

	return base64.URLEncoding.EncodeToString(buf), nil
}

// Decrypt opens a token produced by Encrypt with the given key. Any
// failure, whatever the cause, is reported as ErrDecryptionFailed.
func Decrypt(token string, key []byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(raw) < 1+nonceSize+aead.Overhead() {
		return "", ErrDecryptionFailed
	}
	if raw[0] != tokenVersion {
		return "", ErrDecryptionFailed
	}

	nonce, ciphertext := raw[1:1+nonceSize], raw[1+nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init: %w", err)
	}
	return cipher.NewGCM(block)
}
