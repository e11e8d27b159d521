// Package di wires infrastructure choices that depend on the runtime environment.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	listingadapters "listing_backend/internal/feature/listings/adapters"
	"listing_backend/internal/feature/listings/usecase"
	"listing_backend/internal/platform/cache"
)

// NewListingRepository creates a ListingRepository implementation.
// If Redis is available, the Postgres repository is wrapped with a caching
// decorator. Otherwise, queries go straight to the database.
func NewListingRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ListingRepository {
	repo := listingadapters.NewListingPostgres(db)
	if rdb != nil {
		return cache.NewCachingListingRepository(rdb, ttl, repo, "listings")
	}
	return repo
}
