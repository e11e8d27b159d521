package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "listing_backend/internal/feature/auth/domain/entity"
	commententity "listing_backend/internal/feature/comments/domain/entity"
	listingentity "listing_backend/internal/feature/listings/domain/entity"
	"listing_backend/internal/platform/config"
)

// defaultListingTypes seeds the lookup table on first migration.
var defaultListingTypes = []string{"apartment", "house", "land", "office", "commercial"}

// OpenDB connects to Postgres via GORM, retrying for up to 60 seconds so the
// server survives a database that is still starting up. TranslateError is
// enabled so unique-index violations surface as gorm.ErrDuplicatedKey.
func OpenDB(cfg config.DB) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（users, listings, listing_types, comments）
		if err := db.AutoMigrate(
			&authentity.User{},
			&listingentity.Listing{},
			&listingentity.ListingType{},
			&commententity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		if err := seedListingTypes(db); err != nil {
			log.Fatalf("failed to seed listing types: %v", err)
		}
	}

	return db
}

// seedListingTypes inserts the default lookup rows when the table is empty.
func seedListingTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&listingentity.ListingType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	types := make([]listingentity.ListingType, 0, len(defaultListingTypes))
	for _, name := range defaultListingTypes {
		types = append(types, listingentity.ListingType{Name: name})
	}
	return db.Create(&types).Error
}
