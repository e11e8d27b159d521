// Package dto はcommentsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateCommentReq はPOST /api/listing/:id/commentsのリクエストボディを表します。
// ランキングは0〜5の範囲で、省略時は0になります。
type CreateCommentReq struct {
	Content string `json:"content" binding:"required"`
	Ranking *int   `json:"ranking" binding:"omitempty,gte=0,lte=5"`
}

// RankingOrDefault は省略されたランキングを0として返します。
func (r *CreateCommentReq) RankingOrDefault() int {
	if r.Ranking == nil {
		return 0
	}
	return *r.Ranking
}
