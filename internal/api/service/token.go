package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
	"github.com/aussiebroadwan/myvehicles/pkg/cryptox"
	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
)

// TokenService verifies credentials and issues access tokens. Tokens are
// stateless: nothing about them is persisted.
type TokenService struct {
	Gateway Connector
	Hasher  *cryptox.Hasher
	Signer  jwtx.Signer
	Issuer  string
	TTL     time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Login checks email and password and returns a signed token for the user.
// An unknown email yields ErrUserNotFound and a wrong password
// ErrWrongPassword.
func (s *TokenService) Login(ctx context.Context, in validation.Input) (string, error) {
	if err := validate(ctx, validation.LoginRules(), in); err != nil {
		return "", err
	}

	st, err := s.Gateway.Connect(ctx)
	if err != nil {
		return "", err
	}

	u, err := st.Users().GetByEmail(ctx, in.String("email"))
	if err != nil {
		return "", mapStoreError("find login user", err, ErrUserNotFound)
	}

	if err := s.Hasher.Verify(in.String("senha"), u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", ErrWrongPassword
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	if s.Hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, st, u.ID, in.String("senha"))
	}

	return s.Issue(u.ID)
}

// rehash upgrades a hash made with another cost. Failures are logged and
// never fail the login.
func (s *TokenService) rehash(ctx context.Context, st store.Store, userID, password string) {
	log := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err == nil {
		err = st.Users().SetPasswordHash(ctx, userID, hash)
	}
	if err != nil {
		log.Warn("password rehash failed", "user_id", userID, "error", err)
		return
	}
	log.Info("password rehashed", "user_id", userID, "cost", s.Hasher.Cost())
}

// Issue mints a token for an already authenticated user.
func (s *TokenService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("issue token: empty user id")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	token, err := s.Signer.Sign(jwtx.NewUserClaims(userID, s.Issuer, ttl, now().UTC()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
