// Package hash provides the bcrypt implementation of the password hasher.
package hash

import (
	"golang.org/x/crypto/bcrypt"

	"portal_backend/internal/feature/auth/usecase"
)

// BcryptHasher hashes passwords with bcrypt at the given cost.
type BcryptHasher struct {
	cost int
}

// Compile-time check to ensure BcryptHasher implements PasswordHasher.
var _ usecase.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher. A cost of 0 selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from a plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a plaintext password against a stored bcrypt hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
