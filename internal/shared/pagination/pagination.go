// Package pagination はページネーションクエリの解析と計算を提供します。
package pagination

import "strconv"

const (
	// DefaultPage はpageパラメータ欠落・不正時のデフォルト値です。
	DefaultPage = 1
	// DefaultLimit はlimitパラメータ欠落・不正時のデフォルト値です。
	DefaultLimit = 10
)

// Params は正規化済みのページネーションパラメータです。
type Params struct {
	Page  int
	Limit int
}

// Parse はクエリ文字列のpage/limitを解析します。
// 欠落・非数値・0以下の値はデフォルト値に置き換えられます。
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset はゼロベースのオフセットを返します。
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages はceil(total/limit)を返します。limitが0以下の場合は0を返します。
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
