package dto

import (
	"time"

	"listing_backend/internal/feature/comments/domain/entity"
)

// CommentItem はクライアントへ返すコメント表現です。
type CommentItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Content   string    `json:"content"`
	Ranking   int       `json:"ranking"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentItem はエンティティからCommentItemを生成します。
func NewCommentItem(c *entity.Comment) CommentItem {
	return CommentItem{
		ID:        c.ID,
		UserID:    c.UserID,
		ListingID: c.ListingID,
		Content:   c.Content,
		Ranking:   c.Ranking,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCommentItems はエンティティのスライスをCommentItemのスライスに変換します。
func NewCommentItems(comments []entity.Comment) []CommentItem {
	out := make([]CommentItem, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentItem(&comments[i]))
	}
	return out
}
