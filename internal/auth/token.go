// Package auth issues and verifies the bearer tokens that bind a request to
// a user id.
package auth

import (
	"errors"
	"time"

	"github.com/anonto42/second-brain/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers bad signature, malformed payload and expiry alike;
// callers never learn which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

const tokenTTL = time.Hour * 72

// TokenService signs and verifies HS256 tokens with a process-wide secret.
// The secret is set once at construction and never rotated in-process.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token embedding userID.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and decodability and returns the embedded user id.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
