package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{
			name:     "Valid password",
			password: "securepassword",
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hashedPassword)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.password, hashedPassword)

			cost, err := bcrypt.Cost([]byte(hashedPassword))
			assert.NoError(t, err)
			assert.Equal(t, 10, cost)
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}
	hashed, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{
			name:           "Matching password",
			password:       "securepassword",
			hashedPassword: hashed,
			expectMatch:    true,
		},
		{
			name:           "Non-matching password",
			password:       "wrongpassword",
			hashedPassword: hashed,
			expectMatch:    false,
		},
		{
			name:           "Missing hash",
			password:       "securepassword",
			hashedPassword: "",
			expectMatch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := hashService.ComparePassword(tt.hashedPassword, tt.password)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
