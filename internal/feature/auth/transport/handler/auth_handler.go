// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"listing_backend/internal/feature/auth/domain/entity"
	"listing_backend/internal/feature/auth/transport/http/dto"
	"listing_backend/internal/feature/auth/usecase"
	jwtmw "listing_backend/internal/platform/jwt"
	"listing_backend/internal/shared/response"
	"listing_backend/internal/shared/validation"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、ユーザーとセッショントークンを返します。
	Register(ctx context.Context, email, password, name string) (*entity.User, string, error)
	// Login はユーザーを認証し、成功時にユーザーとセッショントークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// トークンはJSONボディではなくhttp-onlyクッキーでのみ配送されます。
type AuthHandler struct {
	auth     AuthUsecase
	tokenTTL time.Duration
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// tokenTTLはクッキーの有効期間としても使用されます。
func NewAuthHandler(auth AuthUsecase, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, tokenTTL: tokenTTL}
}

// setSessionCookie はセッショントークンをhttp-only・SameSite=Strictクッキーとして設定します。
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwtmw.CookieName, token, int(h.tokenTTL.Seconds()), "/", "", false, true)
}

// clearSessionCookie はセッションクッキーを削除します。
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwtmw.CookieName, "", -1, "/", "", false, true)
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はセッションクッキーを設定し201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusConflict, "Email already in use")
			return
		}
		// 内部エラーの詳細はログのみに残し、クライアントには汎用メッセージを返す
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	response.Success(c, http.StatusCreated, gin.H{"user": dto.NewUserResponse(user)}, "User registered successfully")
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー不在とパスワード不一致を区別しない）
// - 成功時はセッションクッキーを設定し200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、常に同一のメッセージを返す
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	response.Success(c, http.StatusOK, gin.H{"user": dto.NewUserResponse(user)}, "Login successful")
}

// Logout はセッションクッキーを削除します。常に成功します。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.Success(c, http.StatusOK, nil, "Logged out successfully")
}
