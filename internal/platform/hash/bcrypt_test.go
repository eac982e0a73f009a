package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hashed == "secret1" {
		t.Fatal("Hash() returned the plaintext password")
	}

	if err := h.Compare(hashed, "secret1"); err != nil {
		t.Errorf("Compare() with the right password: %v", err)
	}
	if err := h.Compare(hashed, "wrong"); err == nil {
		t.Error("Compare() with the wrong password succeeded")
	}
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical, want distinct salts")
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", h.cost, bcrypt.DefaultCost)
	}
}
