package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		userID         string
		isAdmin        bool
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         "1234",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Admin Token",
			userID:         "AD01",
			isAdmin:        true,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         "1234",
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.isAdmin, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name          string
		tokenString   string
		setup         func() string
		expectError   bool
		expectedUser  string
		expectedAdmin bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("1234", false, time.Now().Add(time.Hour))
				return token
			},
			expectedUser: "1234",
		},
		{
			name: "Admin Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("AD01", true, time.Now().Add(time.Hour))
				return token
			},
			expectedUser:  "AD01",
			expectedAdmin: true,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("1234", false, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Other Secret",
			setup: func() string {
				token, _ := NewJWTService("another").GenerateJWT("1234", true, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, claims.UserID)
				assert.Equal(t, tt.expectedAdmin, claims.IsAdmin)
			}
		})
	}
}
