// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"listing_backend/internal/feature/comments/domain/entity"
	"listing_backend/internal/feature/comments/usecase"
)

// commentPostgres はCommentRepositoryインターフェースのGORM実装です。
type commentPostgres struct {
	db *gorm.DB
}

// commentPostgresがCommentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CommentRepository = (*commentPostgres)(nil)

// NewCommentPostgres は指定されたgorm.DB接続でcommentPostgresの新しいインスタンスを生成します。
func NewCommentPostgres(db *gorm.DB) *commentPostgres {
	return &commentPostgres{db: db}
}

// Create はコメントをデータベースに追加します。
func (r *commentPostgres) Create(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// FindPageByListing は指定掲載のコメントを作成日時の降順で1ページ分と総件数を取得します。
func (r *commentPostgres) FindPageByListing(ctx context.Context, listingID string, offset, limit int) ([]entity.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("listing_id = ?", listingID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []entity.Comment
	err = r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
