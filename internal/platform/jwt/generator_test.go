package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID string
		email  string
		role   string
	}{
		{"regular user", "6f1f9a2e-91f3-4f9a-b0f4-1d2c3b4a5e6f", "user@example.com", "user"},
		{"admin user", "0a1b2c3d-0000-4000-8000-000000000001", "admin@example.com", "admin"},
		{"email with plus tag", "11111111-2222-4333-8444-555555555555", "user+tag@example.com", "user"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email, tt.role)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Verify the token can be parsed with the same secret
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}
			if claims["sub"] != tt.userID {
				t.Errorf("expected sub %q, got %v", tt.userID, claims["sub"])
			}
			if claims["email"] != tt.email {
				t.Errorf("expected email %q, got %v", tt.email, claims["email"])
			}
			if claims["role"] != tt.role {
				t.Errorf("expected role %q, got %v", tt.role, claims["role"])
			}
			if _, ok := claims["exp"].(float64); !ok {
				t.Error("expected exp claim to be set")
			}
			if _, ok := claims["iat"].(float64); !ok {
				t.Error("expected iat claim to be set")
			}
		})
	}
}

// TestGenerator_GenerateToken_WrongSecret は異なるシークレットで検証が失敗することを確認します。
func TestGenerator_GenerateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("correct-secret", time.Hour)
	tokenStr, err := gen.GenerateToken("user-id", "user@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("expected verification with the wrong secret to fail")
	}
}
