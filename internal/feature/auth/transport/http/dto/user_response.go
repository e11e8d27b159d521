package dto

import (
	"time"

	"listing_backend/internal/feature/auth/domain/entity"
)

// UserResponse はクライアントへ返すユーザー表現です。
// パスワードハッシュは決して含まれません。
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse はエンティティからUserResponseを生成します。
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
