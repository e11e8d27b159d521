package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"listing_backend/internal/shared/response"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthRequired returns a Gin middleware that validates session tokens and
// restricts access to authenticated users only. The token is read from the
// session cookie first, then from the Authorization header as a fallback.
func AuthRequired(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)
	return func(c *gin.Context) {
		// 1. Get the token from the cookie or the Authorization header
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			auth := c.GetHeader("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
				c.Abort()
				return
			}
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		}

		// 2. Parse and verify the signature (only HMAC allowed)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			// Validation error, expired or otherwise invalid token
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		// 3. Extract the identity claim
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		if sub, ok := claims["sub"].(string); ok {
			c.Set(ContextUserID, sub)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(ContextRole, role)
		}

		// 4. Pass control to the next handler
		c.Next()
	}
}

// ClaimFromContext returns the identity claim attached by AuthRequired.
// The second return value is false when no authenticated user is present.
func ClaimFromContext(c *gin.Context) (Claim, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return Claim{}, false
	}
	claim := Claim{UserID: userID.(string)}
	if email, ok := c.Get(ContextEmail); ok {
		claim.Email = email.(string)
	}
	if role, ok := c.Get(ContextRole); ok {
		claim.Role = role.(string)
	}
	return claim, true
}
