package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"listing_backend/internal/feature/listings/domain/entity"
	"listing_backend/internal/feature/listings/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Listing{}, &entity.ListingType{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// newTestListing returns a listing row with a distinct id and creation time.
func newTestListing(id string, createdAt time.Time) *entity.Listing {
	return &entity.Listing{
		ID:          id,
		UserID:      "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Type:        "apartment",
		Title:       "Listing " + id,
		Description: "Test description",
		Price:       100000,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestListingPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingPostgres(db)

	area := 62.5
	listing := &entity.Listing{
		ID:          "id-1",
		UserID:      "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Type:        "apartment",
		Title:       "Sunny 2LDK",
		Description: "South-facing",
		Price:       250000,
		Area:        &area,
		ImageURLs:   []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
	}

	err := repo.Create(context.Background(), listing)
	require.NoError(t, err, "failed to create listing")

	found, err := repo.FindByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Sunny 2LDK", found.Title)
	require.NotNil(t, found.Area)
	assert.Equal(t, 62.5, *found.Area)
	// image_urls round-trips through the JSON serializer
	assert.Equal(t, []string{"https://example.com/1.jpg", "https://example.com/2.jpg"}, found.ImageURLs)
}

func TestListingPostgres_FindPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingPostgres(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		l := newTestListing(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Create(context.Background(), l), "failed to create test data")
	}

	t.Run("first page is newest first", func(t *testing.T) {
		listings, total, err := repo.FindPage(context.Background(), 0, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, listings, 2)
		assert.Equal(t, "id-4", listings[0].ID)
		assert.Equal(t, "id-3", listings[1].ID)
	})

	t.Run("offset skips newer rows", func(t *testing.T) {
		listings, total, err := repo.FindPage(context.Background(), 4, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, listings, 1)
		assert.Equal(t, "id-0", listings[0].ID)
	})

	t.Run("offset past the end returns empty page with total", func(t *testing.T) {
		listings, total, err := repo.FindPage(context.Background(), 10, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, listings)
	})
}

func TestListingPostgres_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingPostgres(db)

	require.NoError(t, repo.Create(context.Background(), newTestListing("id-1", time.Now())))

	t.Run("found", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), "id-1")

		require.NoError(t, err)
		assert.Equal(t, "id-1", found.ID)
	})

	t.Run("not found", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), "missing-id")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)
	})
}

func TestListingPostgres_Update(t *testing.T) {
	t.Run("updates only given fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)

		require.NoError(t, repo.Create(context.Background(), newTestListing("id-1", time.Now())))

		updated, err := repo.Update(context.Background(), "id-1", map[string]interface{}{
			"title": "Renovated",
			"price": 260000.0,
		})

		require.NoError(t, err)
		assert.Equal(t, "Renovated", updated.Title)
		assert.Equal(t, float64(260000), updated.Price)
		assert.Equal(t, "Test description", updated.Description, "untouched field must keep its value")
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)

		updated, err := repo.Update(context.Background(), "missing-id", map[string]interface{}{"title": "x"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)
	})
}

func TestListingPostgres_Delete(t *testing.T) {
	t.Run("deletes existing listing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)

		require.NoError(t, repo.Create(context.Background(), newTestListing("id-1", time.Now())))

		err := repo.Delete(context.Background(), "id-1")
		require.NoError(t, err)

		_, err = repo.FindByID(context.Background(), "id-1")
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)

		err := repo.Delete(context.Background(), "missing-id")

		assert.ErrorIs(t, err, usecase.ErrListingNotFound)
	})
}

func TestListingPostgres_ListTypes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewListingPostgres(db)

	names := []string{"apartment", "house", "land"}
	for _, n := range names {
		require.NoError(t, db.Create(&entity.ListingType{Name: n}).Error)
	}

	types, err := repo.ListTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 3)
	// ordered by id, which follows insertion order here
	for i, n := range names {
		assert.Equal(t, n, types[i].Name)
	}
}
