package dto

import (
	"time"

	"listing_backend/internal/feature/listings/domain/entity"
)

// ListingItem はクライアントへ返す掲載表現です。
type ListingItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Area        *float64  `json:"area,omitempty"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewListingItem はエンティティからListingItemを生成します。
func NewListingItem(l *entity.Listing) ListingItem {
	return ListingItem{
		ID:          l.ID,
		UserID:      l.UserID,
		Type:        l.Type,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Area:        l.Area,
		ImageURLs:   l.ImageURLs,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// NewListingItems はエンティティのスライスをListingItemのスライスに変換します。
func NewListingItems(listings []entity.Listing) []ListingItem {
	out := make([]ListingItem, 0, len(listings))
	for i := range listings {
		out = append(out, NewListingItem(&listings[i]))
	}
	return out
}

// ListingTypeItem はlisting_typesルックアップの1行の表現です。
type ListingTypeItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewListingTypeItems はエンティティのスライスをListingTypeItemのスライスに変換します。
func NewListingTypeItems(types []entity.ListingType) []ListingTypeItem {
	out := make([]ListingTypeItem, 0, len(types))
	for _, t := range types {
		out = append(out, ListingTypeItem{ID: t.ID, Name: t.Name})
	}
	return out
}
