package dto

// UpdateListingReq はPUT /api/listing/:idの部分更新リクエストボディを表します。
// 全フィールドが省略可能ですが、少なくとも1つの指定が必要です（HasFieldsで判定）。
type UpdateListingReq struct {
	Type        *string  `json:"type" binding:"omitempty,min=1"`
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Area        *float64 `json:"area" binding:"omitempty,gt=0"`
}

// HasFields は少なくとも1つのフィールドが指定されているかを返します。
func (r *UpdateListingReq) HasFields() bool {
	return r.Type != nil || r.Title != nil || r.Description != nil || r.Price != nil || r.Area != nil
}
