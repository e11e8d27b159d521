// Package response は全エンドポイント共通のJSONエンベロープを提供します。
package response

import (
	"github.com/gin-gonic/gin"

	"listing_backend/internal/shared/pagination"
)

// Status values used in the envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Pagination はページネーション付きレスポンスのメタ情報です。
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Body は全ハンドラーが返す統一エンベロープです。
// Data/Message/Paginationは内容がある場合のみ出力されます。
type Body struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success は成功レスポンスを書き込みます。
func Success(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Body{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// Error はエラーレスポンスを書き込みます。messageのみを返し、内部詳細は含めません。
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Body{
		Status:  StatusError,
		Message: message,
	})
}

// Paginated はページネーション情報付きの成功レスポンスを書き込みます。
// totalPagesはceil(total/limit)で計算されます。
func Paginated(c *gin.Context, code int, data interface{}, total int64, page, limit int, message string) {
	c.JSON(code, Body{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
		Pagination: &Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: pagination.TotalPages(total, limit),
		},
	})
}
