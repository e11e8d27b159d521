// Package entity はcommentsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Comment は掲載に対するコメントを表します。
// 作成後の更新・削除経路は存在しません。
type Comment struct {
	// ID はサーバー生成のUUIDです。
	ID string `gorm:"primaryKey;size:36"`

	// UserID はコメント投稿者への参照です。セッションクレームから設定されます。
	UserID string `gorm:"size:36;not null"`

	// ListingID は対象掲載への参照です。パスパラメータから設定されます。
	ListingID string `gorm:"size:36;not null;index"`

	// Content はコメント本文です。
	Content string `gorm:"type:text;not null"`

	// Ranking は0〜5の評価値です。省略時は0になります。
	Ranking int `gorm:"not null;default:0"`

	// CreatedAt は作成日時です。一覧はこの降順で返されます。
	CreatedAt time.Time

	// UpdatedAt は最終更新日時です。
	UpdatedAt time.Time
}
