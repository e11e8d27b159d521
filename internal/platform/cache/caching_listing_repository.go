// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"listing_backend/internal/feature/listings/domain/entity"
	"listing_backend/internal/feature/listings/usecase"
)

// CachingListingRepository decorates a ListingRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingListingRepository struct {
	inner     usecase.ListingRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// cachedPage bundles a page of listings with its total count for caching.
type cachedPage struct {
	Items []entity.Listing `json:"items"`
	Total int64            `json:"total"`
}

// NewCachingListingRepository decorates a ListingRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "listings".
func NewCachingListingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ListingRepository, namespace string) *CachingListingRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "listings"
	}
	return &CachingListingRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a listing and invalidates cached pages.
func (c *CachingListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	if err := c.inner.Create(ctx, l); err != nil {
		return err
	}
	c.invalidatePages(ctx)
	return nil
}

// FindPage retrieves a page of listings, checking cache first then falling back
// to the database.
func (c *CachingListingRepository) FindPage(ctx context.Context, offset, limit int) ([]entity.Listing, int64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindPage(ctx, offset, limit)
	}

	key := c.pageKey(offset, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var page cachedPage
		if err := json.Unmarshal(b, &page); err == nil {
			return page.Items, page.Total, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	items, total, err := c.inner.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(cachedPage{Items: items, Total: total}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return items, total, nil
}

// FindByID retrieves a listing by id, checking cache first.
// Sentinel errors from the inner repository are never cached.
func (c *CachingListingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var l entity.Listing
		if err := json.Unmarshal(b, &l); err == nil {
			return &l, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	l, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(l); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return l, nil
}

// Update modifies a listing and invalidates its id entry plus cached pages.
func (c *CachingListingRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Listing, error) {
	l, err := c.inner.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	c.invalidateListing(ctx, id)
	return l, nil
}

// Delete removes a listing and invalidates its id entry plus cached pages.
func (c *CachingListingRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidateListing(ctx, id)
	return nil
}

// ListTypes retrieves the listing type lookup, checking cache first.
// The lookup table changes only on migration, so it shares the same TTL.
func (c *CachingListingRepository) ListTypes(ctx context.Context) ([]entity.ListingType, error) {
	if c.rdb == nil {
		return c.inner.ListTypes(ctx)
	}

	key := c.namespace + ":types"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var types []entity.ListingType
		if err := json.Unmarshal(b, &types); err == nil {
			return types, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	types, err := c.inner.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(types); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return types, nil
}

// invalidateListing removes the id entry and all cached pages for a mutated listing.
func (c *CachingListingRepository) invalidateListing(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.idKey(id)).Err() // Best effort: don't fail if cache deletion fails
	c.invalidatePages(ctx)
}

// invalidatePages removes all cached pages using SCAN.
func (c *CachingListingRepository) invalidatePages(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	pattern := c.namespace + ":page:*"
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
}

// idKey generates the cache key for a single listing.
func (c *CachingListingRepository) idKey(id string) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, id)
}

// pageKey generates the cache key for a page query.
func (c *CachingListingRepository) pageKey(offset, limit int) string {
	return fmt.Sprintf("%s:page:%d:%d", c.namespace, offset, limit)
}
