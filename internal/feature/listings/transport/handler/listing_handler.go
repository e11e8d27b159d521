// Package handler はlistingsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing_backend/internal/feature/listings/domain/entity"
	"listing_backend/internal/feature/listings/transport/http/dto"
	"listing_backend/internal/feature/listings/usecase"
	jwtmw "listing_backend/internal/platform/jwt"
	"listing_backend/internal/shared/pagination"
	"listing_backend/internal/shared/response"
	"listing_backend/internal/shared/validation"
)

// ListingsUsecase は掲載操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ListingsUsecase interface {
	List(ctx context.Context, offset, limit int) ([]entity.Listing, int64, error)
	Get(ctx context.Context, id string) (*entity.Listing, error)
	Create(ctx context.Context, p usecase.CreateParams) (*entity.Listing, error)
	Update(ctx context.Context, id string, p usecase.UpdateParams) (*entity.Listing, error)
	Delete(ctx context.Context, id, requesterID string) error
	Types(ctx context.Context) ([]entity.ListingType, error)
}

// ListingHandler は掲載操作のHTTPリクエストを処理します。
type ListingHandler struct {
	uc ListingsUsecase
}

// NewListingHandler はListingHandlerの新しいインスタンスを生成します。
func NewListingHandler(uc ListingsUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

// List はGET /api/listingを処理します。
// page/limitクエリを正規化し、作成日時の降順でページネーション付き一覧を返します。
func (h *ListingHandler) List(c *gin.Context) {
	p := pagination.Parse(c.Query("page"), c.Query("limit"))

	listings, total, err := h.uc.List(c.Request.Context(), p.Offset(), p.Limit)
	if err != nil {
		slog.Error("list listings failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	response.Paginated(c, http.StatusOK, dto.NewListingItems(listings), total, p.Page, p.Limit,
		"Listings retrieved successfully")
}

// Get はGET /api/listing/:idを処理します。
func (h *ListingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	listing, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "Listing not found")
			return
		}
		slog.Error("get listing failed", "error", err, "listing_id", id)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	item := dto.NewListingItem(listing)
	response.Success(c, http.StatusOK, item, "Listing retrieved successfully")
}

// Types はGET /api/listing/typesを処理します。
func (h *ListingHandler) Types(c *gin.Context) {
	types, err := h.uc.Types(c.Request.Context())
	if err != nil {
		slog.Error("list listing types failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve listing types")
		return
	}

	response.Success(c, http.StatusOK, dto.NewListingTypeItems(types), "Listing types retrieved successfully")
}

// Create はPOST /api/listingを処理します。認証必須です。
// IDとタイムスタンプはサーバーが生成します。
func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create listing validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	listing, err := h.uc.Create(c.Request.Context(), usecase.CreateParams{
		UserID:      req.UserID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
		ImageURLs:   req.ImageURLs,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		slog.Error("create listing failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	item := dto.NewListingItem(listing)
	response.Success(c, http.StatusCreated, item, "Listing created successfully")
}

// Update はPUT /api/listing/:idを処理します。認証必須です。
// 少なくとも1つのフィールドが指定されていなければ400を返します。
func (h *ListingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// ボディ欠落はフィールド未指定として扱う
		if errors.Is(err, io.EOF) {
			response.Error(c, http.StatusBadRequest, "At least one field must be provided for update")
			return
		}
		slog.Warn("update listing validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	if !req.HasFields() {
		response.Error(c, http.StatusBadRequest, "At least one field must be provided for update")
		return
	}

	listing, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateParams{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Area:        req.Area,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "Listing not found")
		case errors.Is(err, usecase.ErrNoFieldsToUpdate):
			response.Error(c, http.StatusBadRequest, "At least one field must be provided for update")
		default:
			slog.Error("update listing failed", "error", err, "listing_id", id)
			response.Error(c, http.StatusInternalServerError, "Failed to update listing")
		}
		return
	}

	item := dto.NewListingItem(listing)
	response.Success(c, http.StatusOK, item, "Listing updated successfully")
}

// Delete はDELETE /api/listing/:idを処理します。認証必須です。
// 所有者または管理者ロールのみが削除できます。
func (h *ListingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	claim, ok := jwtmw.ClaimFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, claim.UserID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "Listing not found")
		case errors.Is(err, usecase.ErrForbidden):
			slog.Warn("listing delete forbidden", "listing_id", id, "user_id", claim.UserID)
			response.Error(c, http.StatusForbidden, "You are not authorized to delete this listing")
		default:
			slog.Error("delete listing failed", "error", err, "listing_id", id)
			response.Error(c, http.StatusInternalServerError, "Failed to delete listing")
		}
		return
	}

	response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}
