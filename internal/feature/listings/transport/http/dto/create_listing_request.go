// Package dto はlistingsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateListingReq はPOST /api/listingのリクエストボディを表します。
// 価格と面積は正の値のみ許可されます。
type CreateListingReq struct {
	Type        string   `json:"type" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	UserID      string   `json:"user_id" binding:"required,uuid"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Area        *float64 `json:"area" binding:"omitempty,gt=0"`
	ImageURLs   []string `json:"image_urls" binding:"omitempty,dive,url"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}
