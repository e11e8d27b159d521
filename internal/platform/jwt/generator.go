// Package jwtmw provides session token generation and the gin middleware
// that verifies tokens on authenticated routes.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the http-only cookie carrying the session token.
const CookieName = "token"

// Claim is the decoded identity carried by a session token.
// Its only storage is the signed token itself.
type Claim struct {
	UserID string
	Email  string
	Role   string
}

// Generator defines the interface for session token generation.
type Generator interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(userID, email, role string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new token generator with the provided secret and
// expiration duration. The secret comes from configuration, never from the
// environment at call time.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 token embedding the user's identity.
func (g *generator) GenerateToken(userID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
