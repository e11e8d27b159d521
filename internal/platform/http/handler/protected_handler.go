package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "listing_backend/internal/platform/jwt"
	"listing_backend/internal/shared/response"
)

// Protected は認証確認用の診断エンドポイント /api/protected を処理します。
// セッションクレームの内容をそのまま返します。
func Protected(c *gin.Context) {
	claim, ok := jwtmw.ClaimFromContext(c)
	if !ok {
		// AuthRequiredを通過していれば到達しない
		response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user_id": claim.UserID,
		"email":   claim.Email,
		"role":    claim.Role,
	}, "You have accessed a protected route")
}
