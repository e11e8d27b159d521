// Package usecase はlistingsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "listing_backend/internal/feature/auth/domain/entity"
	"listing_backend/internal/feature/listings/domain/entity"
)

// ListingRepository は掲載エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ListingRepository interface {
	// Create は新しい掲載をストレージに永続化します。
	Create(ctx context.Context, listing *entity.Listing) error

	// FindPage は作成日時の降順で掲載の1ページ分と総件数を取得します。
	FindPage(ctx context.Context, offset, limit int) ([]entity.Listing, int64, error)

	// FindByID はIDで掲載を取得します。存在しない場合、ErrListingNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// Update は指定フィールドのみを更新し、更新後の掲載を返します。
	// 一致する行がない場合、ErrListingNotFoundを返します。
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Listing, error)

	// Delete はIDで掲載を削除します。一致する行がない場合、ErrListingNotFoundを返します。
	Delete(ctx context.Context, id string) error

	// ListTypes はlisting_typesルックアップの全行を取得します。
	ListTypes(ctx context.Context) ([]entity.ListingType, error)
}

// RoleFinder はリクエストユーザーのロール取得を抽象化します。
// トークン内のロールではなくストレージの値を認可判定の根拠とします。
type RoleFinder interface {
	RoleByUserID(ctx context.Context, userID string) (string, error)
}

// CreateParams は掲載作成の入力です。IDとタイムスタンプはサーバーが生成します。
type CreateParams struct {
	UserID      string
	Type        string
	Title       string
	Description string
	Price       float64
	Area        *float64
	ImageURLs   []string
	Latitude    *float64
	Longitude   *float64
}

// UpdateParams は部分更新の入力です。nilのフィールドは変更されません。
type UpdateParams struct {
	Type        *string
	Title       *string
	Description *string
	Price       *float64
	Area        *float64
}

// ListingsUsecase は掲載のビジネスロジックを実装します。
type ListingsUsecase struct {
	listings ListingRepository
	roles    RoleFinder
}

// NewListingsUsecase はListingsUsecaseの新しいインスタンスを生成します。
func NewListingsUsecase(listings ListingRepository, roles RoleFinder) *ListingsUsecase {
	return &ListingsUsecase{
		listings: listings,
		roles:    roles,
	}
}

// List は掲載の1ページ分と総件数を返します。
func (u *ListingsUsecase) List(ctx context.Context, offset, limit int) ([]entity.Listing, int64, error) {
	return u.listings.FindPage(ctx, offset, limit)
}

// Get はIDで掲載を返します。
func (u *ListingsUsecase) Get(ctx context.Context, id string) (*entity.Listing, error) {
	return u.listings.FindByID(ctx, id)
}

// Create はサーバー生成のUUIDで新しい掲載を作成します。
func (u *ListingsUsecase) Create(ctx context.Context, p CreateParams) (*entity.Listing, error) {
	listing := &entity.Listing{
		ID:          uuid.NewString(),
		UserID:      p.UserID,
		Type:        p.Type,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Area:        p.Area,
		ImageURLs:   p.ImageURLs,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
	if err := u.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update は指定された掲載を部分更新します。
// 1つもフィールドが指定されていない場合、ErrNoFieldsToUpdateを返します。
func (u *ListingsUsecase) Update(ctx context.Context, id string, p UpdateParams) (*entity.Listing, error) {
	fields := map[string]interface{}{}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Area != nil {
		fields["area"] = *p.Area
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	return u.listings.Update(ctx, id, fields)
}

// Delete は所有者または管理者による掲載の削除を行います。
// 認可判定は3回の逐次クエリ（ロール取得・掲載取得・削除）で行われ、
// クエリ間の並行変更は検出されません。
func (u *ListingsUsecase) Delete(ctx context.Context, id, requesterID string) error {
	role, err := u.roles.RoleByUserID(ctx, requesterID)
	if err != nil {
		return err
	}

	listing, err := u.listings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.UserID != requesterID && role != authentity.RoleAdmin {
		return ErrForbidden
	}

	return u.listings.Delete(ctx, id)
}

// Types はlisting_typesルックアップの全行を返します。
func (u *ListingsUsecase) Types(ctx context.Context) ([]entity.ListingType, error) {
	return u.listings.ListTypes(ctx)
}
