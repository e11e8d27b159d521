// Package adapters はlistingsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"listing_backend/internal/feature/listings/domain/entity"
	"listing_backend/internal/feature/listings/usecase"
)

// listingPostgres はListingRepositoryインターフェースのGORM実装です。
type listingPostgres struct {
	db *gorm.DB
}

// listingPostgresがListingRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ListingRepository = (*listingPostgres)(nil)

// NewListingPostgres は指定されたgorm.DB接続でlistingPostgresの新しいインスタンスを生成します。
func NewListingPostgres(db *gorm.DB) *listingPostgres {
	return &listingPostgres{db: db}
}

// Create は掲載をデータベースに追加します。
func (r *listingPostgres) Create(ctx context.Context, l *entity.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// FindPage は作成日時の降順で1ページ分の掲載と総件数を取得します。
func (r *listingPostgres) FindPage(ctx context.Context, offset, limit int) ([]entity.Listing, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Listing{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []entity.Listing
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// FindByID はIDで掲載を取得します。
// 存在しない場合、usecase.ErrListingNotFoundを返します。
func (r *listingPostgres) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	var l entity.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Update は指定フィールドのみを主キーで絞って更新し、更新後の行を返します。
// 一致する行がない場合、usecase.ErrListingNotFoundを返します。
func (r *listingPostgres) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Listing, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, usecase.ErrListingNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete はIDで掲載を削除します。
// 一致する行がない場合、usecase.ErrListingNotFoundを返します。
// コメントは削除されず、孤児として残ります。
func (r *listingPostgres) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Listing{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return usecase.ErrListingNotFound
	}
	return nil
}

// ListTypes はlisting_typesルックアップの全行を取得します。
func (r *listingPostgres) ListTypes(ctx context.Context) ([]entity.ListingType, error) {
	var types []entity.ListingType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
