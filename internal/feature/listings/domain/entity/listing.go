// Package entity はlistingsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Listing は物件の掲載情報を表します。
// 所有者（UserID）または管理者ロールのユーザーのみが変更できます。
type Listing struct {
	// ID はサーバー生成のUUIDです。
	ID string `gorm:"primaryKey;size:36"`

	// UserID は掲載の所有者への参照です。ユーザー行とは独立に存続します。
	UserID string `gorm:"size:36;not null;index"`

	// Type は物件種別（listing_typesルックアップの値）です。
	Type string `gorm:"size:64;not null"`

	// Title は掲載タイトルです。
	Title string `gorm:"size:255;not null"`

	// Description は物件の説明文です。
	Description string `gorm:"type:text;not null"`

	// Price は価格です。正の値のみ許可されます。
	Price float64 `gorm:"not null"`

	// Area は面積（任意、正の値）です。
	Area *float64

	// ImageURLs は画像URLのリスト（任意）です。JSONとして永続化されます。
	ImageURLs []string `gorm:"serializer:json"`

	// Latitude / Longitude は地理座標（任意）です。
	Latitude  *float64
	Longitude *float64

	// CreatedAt は作成日時です。一覧はこの降順で返されます。
	CreatedAt time.Time

	// UpdatedAt は最終更新日時です。
	UpdatedAt time.Time
}

// ListingType はlisting_typesルックアップテーブルの1行を表します。
type ListingType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}
