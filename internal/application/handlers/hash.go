package handlers

import (
	"fmt"

	"github.com/ersonp/catalog-seed/internal/domain/ports"
)

// HashHandler produces password hashes for seed.password_hash.
type HashHandler struct {
	hasher ports.PasswordHasher
}

// NewHashHandler creates a new hash handler.
func NewHashHandler(hasher ports.PasswordHasher) *HashHandler {
	return &HashHandler{hasher: hasher}
}

// Handle hashes password and checks the result is usable by generate.
func (h *HashHandler) Handle(password string) (string, error) {
	hash, err := h.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	if err := h.hasher.Validate(hash); err != nil {
		return "", fmt.Errorf("generated hash rejected: %w", err)
	}
	return hash, nil
}
