package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestHS256_SignAndVerify(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	claims := jwtx.NewUserClaims("user-1", "myvehicles", time.Minute, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	verifier := jwtx.NewVerifierHS256(testSecret, "myvehicles", 0)
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.UserID())
	require.Equal(t, claims.ID, got.ID)
}

func TestHS256_WeakSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)

	_, err = jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256_VerifyFailures(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(testSecret, "myvehicles", 0)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewUserClaims("user-1", "myvehicles", time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewUserClaims("user-1", "myvehicles", time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewUserClaims("user-1", "someone-else", time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := jwtx.NewUserClaims("user-1", "myvehicles", time.Minute, time.Now())
		c.ExpiresAt = nil
		token, err := signer.Sign(c)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		c := jwtx.NewUserClaims("user-1", "myvehicles", time.Minute, time.Now())
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString(testSecret)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestHS256_Leeway(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewUserClaims("user-1", "", time.Minute, time.Now().Add(-70*time.Second)))
	require.NoError(t, err)

	_, err = jwtx.NewVerifierHS256(testSecret, "", 0).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	got, err := jwtx.NewVerifierHS256(testSecret, "", 30*time.Second).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.UserID())
}
