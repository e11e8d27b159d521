package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Email   string  `validate:"required,email"`
	Content string  `validate:"required"`
	Ranking int     `validate:"gte=0,lte=5"`
	Price   float64 `validate:"gt=0"`
}

// TestMessage_CollectsAllFailures は全フィールドの失敗が1つのメッセージに収集されることを検証します。
func TestMessage_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.Struct(sampleReq{Email: "not-an-email", Ranking: 6, Price: 0})
	require.Error(t, err)

	msg := Message(err)

	assert.Contains(t, msg, "Validation error: ")
	assert.Contains(t, msg, "Email: must be a valid email address")
	assert.Contains(t, msg, "Content: is required")
	assert.Contains(t, msg, "Ranking: must be at most 5")
	assert.Contains(t, msg, "Price: must be greater than 0")
}

// TestMessage_SingleFailure は単一フィールド失敗時のメッセージを検証します。
func TestMessage_SingleFailure(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.Struct(sampleReq{Email: "user@example.com", Content: "", Ranking: 3, Price: 10})
	require.Error(t, err)

	assert.Equal(t, "Validation error: Content: is required", Message(err))
}

// TestMessage_NonValidatorError はバリデーション以外のエラーに汎用メッセージを返すことを検証します。
func TestMessage_NonValidatorError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid request data", Message(errors.New("unexpected EOF")))
}
