package jwtmw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// signTestToken はテスト用の署名済みトークンを生成します。
func signTestToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "11111111-2222-4333-8444-555555555555",
		"email": "user@example.com",
		"role":  "user",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// newTestRouter はAuthRequiredで保護されたエコーエンドポイントを持つルーターを生成します。
func newTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		claim, _ := ClaimFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claim.UserID, "email": claim.Email, "role": claim.Role})
	})
	return router
}

// TestAuthRequired_CookieToken はクッキー経由のトークンが受理されることを検証します。
func TestAuthRequired_CookieToken(t *testing.T) {
	router := newTestRouter(testSecret)
	token := signTestToken(t, testSecret, time.Hour)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "11111111-2222-4333-8444-555555555555", body["user_id"])
	assert.Equal(t, "user@example.com", body["email"])
	assert.Equal(t, "user", body["role"])
}

// TestAuthRequired_BearerToken はAuthorizationヘッダー経由のトークンが受理されることを検証します。
func TestAuthRequired_BearerToken(t *testing.T) {
	router := newTestRouter(testSecret)
	token := signTestToken(t, testSecret, time.Hour)

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestAuthRequired_Failures はトークン欠落・不正・期限切れ・署名不一致の401応答を検証します。
func TestAuthRequired_Failures(t *testing.T) {
	tests := []struct {
		name            string
		setup           func(t *testing.T, req *http.Request)
		expectedMessage string
	}{
		{
			name:            "missing token",
			setup:           func(t *testing.T, req *http.Request) {},
			expectedMessage: "Access denied. No token provided.",
		},
		{
			name: "malformed token",
			setup: func(t *testing.T, req *http.Request) {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
			},
			expectedMessage: "Invalid token",
		},
		{
			name: "expired token",
			setup: func(t *testing.T, req *http.Request) {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: signTestToken(t, testSecret, -time.Minute)})
			},
			expectedMessage: "Invalid token",
		},
		{
			name: "wrong signature",
			setup: func(t *testing.T, req *http.Request) {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: signTestToken(t, "other-secret", time.Hour)})
			},
			expectedMessage: "Invalid token",
		},
		{
			name: "authorization header without bearer prefix",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", signTestToken(t, testSecret, time.Hour))
			},
			expectedMessage: "Access denied. No token provided.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testSecret)

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(t, req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

// TestClaimFromContext_NoClaim は未認証コンテキストでfalseを返すことを検証します。
func TestClaimFromContext_NoClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := ClaimFromContext(c)

	assert.False(t, ok)
}
