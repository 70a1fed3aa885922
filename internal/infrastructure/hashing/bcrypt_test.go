package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndMatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password")

	require.NoError(t, err)
	assert.NoError(t, h.Validate(hash))
	assert.True(t, h.Matches(hash, "password"))
	assert.False(t, h.Matches(hash, "nope"))
}

func TestBcryptHasher_HashEmpty(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash("")
	require.Error(t, err)
}

func TestBcryptHasher_Validate(t *testing.T) {
	h := NewBcryptHasher(0)

	tests := []struct {
		name    string
		hash    string
		wantErr bool
	}{
		{name: "default demo hash", hash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOHiM7R.6z6f/9T7VDaRao7IhiHBpjz2", wantErr: false},
		{name: "empty", hash: "", wantErr: true},
		{name: "plain text", hash: "password", wantErr: true},
		{name: "cost out of range", hash: "$2a$99$7EqJtq98hPqEX7fNZaFWoOHiM7R.6z6f/9T7VDaRao7IhiHBpjz2", wantErr: true},
		{name: "missing prefix", hash: "x2a$10$7EqJtq98hPqEX7fNZaFWoOHiM7R.6z6f/9T7VDaRao7IhiHBpjz2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Validate(tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
