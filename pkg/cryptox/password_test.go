package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *Hasher {
	t.Helper()
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(0)
	require.NoError(t, err)
	require.Equal(t, DefaultCost, h.Cost())

	_, err = NewHasher(2)
	require.ErrorIs(t, err, ErrInvalidCost)

	_, err = NewHasher(bcrypt.MaxCost + 1)
	require.ErrorIs(t, err, ErrInvalidCost)
}

func TestHash(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "Senha@123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"unicode password", "Sénha✓123!"},
		{"whitespace password", "   spaces A1!  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")
			require.NotContains(t, hash, tt.password)
			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	h := newTestHasher(t)

	hash1, err := h.Hash("Mesma@123")
	require.NoError(t, err)
	hash2, err := h.Hash("Mesma@123")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, h.Verify("Mesma@123", hash1))
	require.NoError(t, h.Verify("Mesma@123", hash2))
}

func TestHash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	// bcrypt only accepts up to 72 bytes.
	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("Correta@123")
	require.NoError(t, err)

	for _, wrong := range []string{"errada@123", "correta@123", "Correta@123 ", "", "Correta@12"} {
		t.Run(wrong, func(t *testing.T) {
			require.ErrorIs(t, h.Verify(wrong, hash), ErrMismatch)
		})
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	h := newTestHasher(t)

	for _, bad := range []string{"", "plaintext", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"} {
		err := h.Verify("Senha@123", bad)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrMismatch)
	}
}

func TestVerify_AcrossCosts(t *testing.T) {
	low := newTestHasher(t)
	hash, err := low.Hash("Senha@123")
	require.NoError(t, err)

	high, err := NewHasher(bcrypt.MinCost + 1)
	require.NoError(t, err)
	require.NoError(t, high.Verify("Senha@123", hash))
	require.True(t, high.NeedsRehash(hash))
	require.False(t, low.NeedsRehash(hash))
}
