package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"listing_backend/internal/app/di"
	"listing_backend/internal/app/router"
	authadapters "listing_backend/internal/feature/auth/adapters"
	authhandler "listing_backend/internal/feature/auth/transport/handler"
	authusecase "listing_backend/internal/feature/auth/usecase"
	commentadapters "listing_backend/internal/feature/comments/adapters"
	commenthandler "listing_backend/internal/feature/comments/transport/handler"
	commentusecase "listing_backend/internal/feature/comments/usecase"
	listinghandler "listing_backend/internal/feature/listings/transport/handler"
	listingusecase "listing_backend/internal/feature/listings/usecase"
	"listing_backend/internal/platform/config"
	platformdb "listing_backend/internal/platform/db"
	jwtmw "listing_backend/internal/platform/jwt"
	platformredis "listing_backend/internal/platform/redis"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		slog.Warn("Redis not configured, running without cache")
	} else if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	commentRepo := commentadapters.NewCommentPostgres(db)
	// Redisキャッシュでラップ
	listingRepo := di.NewListingRepository(rdb, db, 5*time.Minute)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	listingsUC := listingusecase.NewListingsUsecase(listingRepo, userRepo)
	commentsUC := commentusecase.NewCommentsUsecase(commentRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.TokenTTL)
	listingsH := listinghandler.NewListingHandler(listingsUC)
	commentsH := commenthandler.NewCommentHandler(commentsUC)

	// ルータ生成
	r := router.NewRouter(cfg.JWTSecret, authH, listingsH, commentsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
