package router

import (
	"time"

	"github.com/gin-gonic/gin"

	authhandler "listing_backend/internal/feature/auth/transport/handler"
	commenthandler "listing_backend/internal/feature/comments/transport/handler"
	listinghandler "listing_backend/internal/feature/listings/transport/handler"
	platformhandler "listing_backend/internal/platform/http/handler"
	jwtmw "listing_backend/internal/platform/jwt"
	"listing_backend/internal/shared/ratelimiter"
)

// NewRouter はすべてのルートを組み立てたgin.Engineを返します。
func NewRouter(jwtSecret string, authHandler *authhandler.AuthHandler,
	listings *listinghandler.ListingHandler, comments *commenthandler.CommentHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	// 認証エンドポイントはブルートフォース対策のレート制限付き
	auth := api.Group("/auth")
	auth.Use(ratelimiter.Middleware(ratelimiter.NewRateLimiter(10, time.Minute)))
	{
		// 新規ユーザー登録
		auth.POST("/register", authHandler.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", authHandler.Login)
		// ログアウト（Cookie削除）
		auth.POST("/logout", authHandler.Logout)
	}

	// 掲載の参照は認証不要
	listing := api.Group("/listing")
	{
		listing.GET("", listings.List)
		// 静的セグメントは:idより優先される
		listing.GET("/types", listings.Types)
		listing.GET("/:id", listings.Get)
		listing.GET("/:id/comments", comments.List)
	}

	// 認証必須のルート
	protected := api.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → Cookieまたはリクエストヘッダーに JWT が必要になる
	protected.Use(jwtmw.AuthRequired(jwtSecret))
	{
		protected.GET("/protected", platformhandler.Protected)
		protected.POST("/listing", listings.Create)
		protected.PUT("/listing/:id", listings.Update)
		protected.DELETE("/listing/:id", listings.Delete)
		protected.POST("/listing/:id/comments", comments.Add)
	}

	return r
}
