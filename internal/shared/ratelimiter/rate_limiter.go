// Package ratelimiter は固定ウィンドウ方式のリクエスト頻度制限を提供します。
package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"listing_backend/internal/shared/response"
)

// RateLimiterInterface は、操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow() bool
}

// RateLimiterは、固定ウィンドウ内で許可する操作回数を制限します。
// ハンドラーから並行に呼ばれるため、mutexで保護されています。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allowは現在のウィンドウ内で操作が許可されるかを返します。
// interval経過後は自動的にカウントをリセットします。
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	return rl.count <= rl.limit
}

// Middleware はレートリミット超過時に429を返すGinミドルウェアを生成します。
func Middleware(rl RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow() {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
			response.Error(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
