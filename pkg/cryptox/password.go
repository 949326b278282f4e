package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the stored hashes were originally created with.
const DefaultCost = 10

var (
	// ErrMismatch is returned when a password does not match its hash.
	ErrMismatch = errors.New("password does not match")

	// ErrInvalidCost is returned for a bcrypt cost outside the supported range.
	ErrInvalidCost = errors.New("cryptox: invalid bcrypt cost")
)

// Hasher hashes and verifies passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using cost, or DefaultCost when cost is zero.
func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost reports the work factor new hashes are created with.
func (h *Hasher) Cost() int { return h.cost }

// Hash generates a salted bcrypt hash in the standard "$2a$" encoding.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(b), nil
}

// Verify compares a plaintext password against a bcrypt hash. Hashes made
// with any cost verify, so changing the cost does not lock out users.
func (h *Hasher) Verify(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("cryptox: invalid hash: %w", err)
	}
}

// NeedsRehash reports whether encodedHash was made with a different cost.
func (h *Hasher) NeedsRehash(encodedHash string) bool {
	c, err := bcrypt.Cost([]byte(encodedHash))
	return err != nil || c != h.cost
}
