// Package usecase はcommentsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/google/uuid"

	"listing_backend/internal/feature/comments/domain/entity"
)

// CommentRepository はコメントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CommentRepository interface {
	// Create は新しいコメントをストレージに永続化します。
	Create(ctx context.Context, comment *entity.Comment) error

	// FindPageByListing は指定掲載のコメントを作成日時の降順で1ページ分と総件数を取得します。
	FindPageByListing(ctx context.Context, listingID string, offset, limit int) ([]entity.Comment, int64, error)
}

// AddParams はコメント追加の入力です。IDとタイムスタンプはサーバーが生成します。
type AddParams struct {
	ListingID string
	UserID    string
	Content   string
	Ranking   int
}

// CommentsUsecase はコメントのビジネスロジックを実装します。
type CommentsUsecase struct {
	comments CommentRepository
}

// NewCommentsUsecase はCommentsUsecaseの新しいインスタンスを生成します。
func NewCommentsUsecase(comments CommentRepository) *CommentsUsecase {
	return &CommentsUsecase{comments: comments}
}

// Add はサーバー生成のUUIDで新しいコメントを掲載に追加します。
// 掲載の存在は検証されません。削除された掲載へのコメントは孤児として許容されます。
func (u *CommentsUsecase) Add(ctx context.Context, p AddParams) (*entity.Comment, error) {
	comment := &entity.Comment{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		ListingID: p.ListingID,
		Content:   p.Content,
		Ranking:   p.Ranking,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByListing は指定掲載のコメントの1ページ分と総件数を返します。
// 存在しない掲載IDは0件の空ページとして扱われます。
func (u *CommentsUsecase) ListByListing(ctx context.Context, listingID string, offset, limit int) ([]entity.Comment, int64, error) {
	return u.comments.FindPageByListing(ctx, listingID, offset, limit)
}
