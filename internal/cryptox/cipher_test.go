package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, passphrase string) []byte {
	t.Helper()
	return DeriveKey(passphrase, testParams())
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t, "passkey")

	for _, plaintext := range []string{
		"secret text",
		"multi\nline\ndata",
		"юникод и emoji ✨",
		" ",
	} {
		token, err := Encrypt(plaintext, key)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEqual(t, plaintext, token)

		got, err := Decrypt(token, key)
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	key := testKey(t, "passkey")

	t1, err := Encrypt("secret text", key)
	require.NoError(t, err)
	t2, err := Encrypt("secret text", key)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	for _, token := range []string{t1, t2} {
		got, err := Decrypt(token, key)
		require.NoError(t, err)
		require.Equal(t, "secret text", got)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	token, err := Encrypt("secret text", testKey(t, "passkey"))
	require.NoError(t, err)

	_, err = Decrypt(token, testKey(t, "wrongpass"))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_TamperedToken(t *testing.T) {
	key := testKey(t, "passkey")
	token, err := Encrypt("secret text", key)
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)

	// One flip in each structural region: version byte, nonce,
	// ciphertext body, trailing tag.
	positions := []int{0, 1, 1 + nonceSize, len(raw) - 1}
	for _, pos := range positions {
		tampered := append([]byte(nil), raw...)
		tampered[pos] ^= 0xff
		_, err := Decrypt(base64.URLEncoding.EncodeToString(tampered), key)
		require.ErrorIs(t, err, ErrDecryptionFailed, "flip at byte %d", pos)
	}
}

func TestDecrypt_MalformedTokens(t *testing.T) {
	key := testKey(t, "passkey")

	for _, token := range []string{
		"",
		"not base64 at all!!!",
		base64.URLEncoding.EncodeToString([]byte{tokenVersion}),
		base64.URLEncoding.EncodeToString(make([]byte, 10)),
	} {
		_, err := Decrypt(token, key)
		require.ErrorIs(t, err, ErrDecryptionFailed)
	}
}

func TestDecrypt_TruncatedToken(t *testing.T) {
	key := testKey(t, "passkey")
	token, err := Encrypt("a reasonably long secret payload", key)
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)

	truncated := base64.URLEncoding.EncodeToString(raw[:len(raw)-4])
	_, err = Decrypt(truncated, key)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}
