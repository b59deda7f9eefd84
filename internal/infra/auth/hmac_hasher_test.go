package auth

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_HashVerifyRoundTrip(t *testing.T) {
	hasher := NewHMACHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	passwords := []string{
		"secret1",
		"",
		"pa$$word with spaces",
		"пароль-ünïcode-密码",
	}

	for _, password := range passwords {
		hash := hasher.Hash(password, salt)
		assert.Len(t, hash, sha512.Size)
		assert.True(t, hasher.Verify(password, salt, hash), "password %q should verify against its own hash", password)
	}
}

func TestHMACHasher_HashIsDeterministic(t *testing.T) {
	hasher := NewHMACHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	first := hasher.Hash("secret1", salt)
	second := hasher.Hash("secret1", salt)
	assert.Equal(t, first, second)
}

func TestHMACHasher_DifferentPasswordsDiffer(t *testing.T) {
	hasher := NewHMACHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, hasher.Hash("secret1", salt), hasher.Hash("secret2", salt))
}

func TestHMACHasher_DifferentSaltsDiffer(t *testing.T) {
	hasher := NewHMACHasher()

	saltA, err := hasher.GenerateSalt()
	require.NoError(t, err)
	saltB, err := hasher.GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, hasher.Hash("secret1", saltA), hasher.Hash("secret1", saltB))
}

func TestHMACHasher_GenerateSaltIsRandom(t *testing.T) {
	hasher := NewHMACHasher()

	seen := make(map[string]struct{})
	for range 64 {
		salt, err := hasher.GenerateSalt()
		require.NoError(t, err)
		assert.Len(t, salt, saltLength)

		_, dup := seen[string(salt)]
		assert.False(t, dup, "GenerateSalt returned a repeated value")
		seen[string(salt)] = struct{}{}
	}
}

func TestHMACHasher_VerifyRejectsWrongPassword(t *testing.T) {
	hasher := NewHMACHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash := hasher.Hash("secret1", salt)

	assert.False(t, hasher.Verify("wrong", salt, hash))
	assert.False(t, hasher.Verify("", salt, hash))
	assert.False(t, hasher.Verify("secret1", salt, hash[:len(hash)-1]), "truncated hash must not verify")
	assert.False(t, hasher.Verify("secret1", nil, hash), "missing salt must not verify")
}
