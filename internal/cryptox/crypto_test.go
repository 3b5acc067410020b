package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// testParams keeps the iteration count low so the suite stays fast;
// the construction is identical to DefaultParams.
func testParams() Params {
	return Params{Salt: []byte("secure_salt_value"), Iterations: 1000}
}

func TestHashPassword_Deterministic(t *testing.T) {
	p := testParams()

	d1 := HashPassword("pw1", p)
	d2 := HashPassword("pw1", p)
	require.Equal(t, d1, d2)

	// Fixed-width hex digest of sha256.Size bytes.
	require.Len(t, d1, sha256.Size*2)
	_, err := hex.DecodeString(d1)
	require.NoError(t, err)
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	p := testParams()
	require.NotEqual(t, HashPassword("pw1", p), HashPassword("pw2", p))
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	p1 := Params{Salt: []byte("salt-1"), Iterations: 1000}
	p2 := Params{Salt: []byte("salt-2"), Iterations: 1000}
	require.NotEqual(t, HashPassword("pw", p1), HashPassword("pw", p2))
}

func TestVerifyPassword(t *testing.T) {
	p := testParams()
	digest := HashPassword("correct horse", p)

	require.True(t, VerifyPassword("correct horse", digest, p))
	require.False(t, VerifyPassword("wrong horse", digest, p))
	require.False(t, VerifyPassword("", digest, p))
}

func TestDeriveKey_DeterministicAndKeyLen(t *testing.T) {
	p := testParams()

	k1 := DeriveKey("passkey", p)
	k2 := DeriveKey("passkey", p)
	require.Equal(t, k1, k2)
	require.Len(t, k1, KeyLen)
}

func TestDeriveKey_DifferentPassphrases(t *testing.T) {
	p := testParams()
	require.NotEqual(t, DeriveKey("passkey", p), DeriveKey("passkey2", p))
}

func TestDefaultParams_SourceCompatible(t *testing.T) {
	p := DefaultParams()
	require.Equal(t, []byte("secure_salt_value"), p.Salt)
	require.Equal(t, 100000, p.Iterations)
}
