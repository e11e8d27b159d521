// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing_backend/internal/feature/comments/domain/entity"
	"listing_backend/internal/feature/comments/transport/http/dto"
	"listing_backend/internal/feature/comments/usecase"
	jwtmw "listing_backend/internal/platform/jwt"
	"listing_backend/internal/shared/pagination"
	"listing_backend/internal/shared/response"
	"listing_backend/internal/shared/validation"
)

// CommentsUsecase はコメント操作のユースケースを定義します。
type CommentsUsecase interface {
	Add(ctx context.Context, p usecase.AddParams) (*entity.Comment, error)
	ListByListing(ctx context.Context, listingID string, offset, limit int) ([]entity.Comment, int64, error)
}

// CommentHandler はコメント操作のHTTPリクエストを処理します。
type CommentHandler struct {
	uc CommentsUsecase
}

// NewCommentHandler はCommentHandlerの新しいインスタンスを生成します。
func NewCommentHandler(uc CommentsUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Add はPOST /api/listing/:id/commentsを処理します。認証必須です。
// コメントの投稿者はトークンのクレームから決まります。
func (h *CommentHandler) Add(c *gin.Context) {
	listingID := c.Param("id")

	claim, ok := jwtmw.ClaimFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("add comment validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	comment, err := h.uc.Add(c.Request.Context(), usecase.AddParams{
		ListingID: listingID,
		UserID:    claim.UserID,
		Content:   req.Content,
		Ranking:   req.RankingOrDefault(),
	})
	if err != nil {
		slog.Error("add comment failed", "error", err, "listing_id", listingID)
		response.Error(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	item := dto.NewCommentItem(comment)
	response.Success(c, http.StatusCreated, item, "Comment added successfully")
}

// List はGET /api/listing/:id/commentsを処理します。
// 存在しない掲載IDは0件の空ページとして返されます。
func (h *CommentHandler) List(c *gin.Context) {
	listingID := c.Param("id")
	p := pagination.Parse(c.Query("page"), c.Query("limit"))

	comments, total, err := h.uc.ListByListing(c.Request.Context(), listingID, p.Offset(), p.Limit)
	if err != nil {
		slog.Error("list comments failed", "error", err, "listing_id", listingID)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}

	response.Paginated(c, http.StatusOK, dto.NewCommentItems(comments), total, p.Page, p.Limit,
		"Comments retrieved successfully")
}
