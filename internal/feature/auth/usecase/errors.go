package usecase

import "errors"

// authフィーチャーのビジネスロジックエラーです。
// 上位層（handler）がHTTPステータスへ変換します。
var (
	// ErrEmailAlreadyExists はメールアドレスの一意制約違反を示します。
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrUserNotFound は条件に一致するユーザーが存在しないことを示します。
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials は認証情報の不一致を示します。
	// ユーザー不在とパスワード不一致を区別しない汎用エラーです。
	ErrInvalidCredentials = errors.New("invalid credentials")
)
