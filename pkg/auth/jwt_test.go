package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "globalfund"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret, testIssuer)

	tests := []struct {
		name    string
		userID  string
		isAdmin bool
	}{
		{name: "Regular user", userID: "user-1", isAdmin: false},
		{name: "Admin user", userID: "admin-1", isAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.isAdmin, time.Now().Add(time.Hour))
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.isAdmin, claims.IsAdmin)
			assert.Equal(t, testIssuer, claims.Issuer)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, testIssuer)

	tests := []struct {
		name        string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("user-1", false, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Garbage token",
			setup:       func() string { return "invalid.token.string" },
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("user-1", false, time.Now().Add(-time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret", testIssuer).GenerateJWT("user-1", true, time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token, _ := NewJWTService(testSecret, "someone-else").GenerateJWT("user-1", false, time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidTokenClaims,
		},
		{
			name: "Missing user id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    testIssuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: ErrInvalidTokenClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
