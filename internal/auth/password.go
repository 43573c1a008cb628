package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt
type Hasher struct {
	cost  int
	dummy []byte
}

// NewHasher returns Hasher using provided bcrypt cost, out of range cost falls back to bcrypt.DefaultCost
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// compared against when the user is unknown so both branches cost the same
	dummy, err := bcrypt.GenerateFromPassword([]byte("pony-express-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	return &Hasher{cost: cost, dummy: dummy}, nil
}

// Hash returns salted bcrypt hash of the password
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}
	return string(b), nil
}

// Verify reports whether password matches hash. Malformed hash never matches
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate checks the password of a possibly unknown user.
// When found is false the dummy hash is compared and ErrInvalidCredentials is returned
func (h *Hasher) Authenticate(password, hash string, found bool) error {
	if !found {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
		return ErrInvalidCredentials
	}

	if !h.Verify(password, hash) {
		return ErrInvalidCredentials
	}

	return nil
}
