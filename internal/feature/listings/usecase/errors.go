package usecase

import "errors"

// listingsフィーチャーのビジネスロジックエラーです。
// 上位層（handler）がHTTPステータスへ変換します。
var (
	// ErrListingNotFound は条件に一致する掲載が存在しないことを示します。
	ErrListingNotFound = errors.New("listing not found")

	// ErrForbidden は所有者でも管理者でもないユーザーによる変更操作を示します。
	ErrForbidden = errors.New("not authorized to modify this listing")

	// ErrNoFieldsToUpdate は部分更新で1つもフィールドが指定されなかったことを示します。
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
