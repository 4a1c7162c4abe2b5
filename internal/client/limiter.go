package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель запросов к каталогу, умеет приостанавливать запросы по Retry-After
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	limit        rate.Limit
	blockedUntil time.Time
}

// NewRateLimiter - limit запросов в секунду, rate.Inf - без ограничения
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		limit:   limit,
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// Blocked - запросы приостановлены после ответа 429
func (rl *RateLimiter) Blocked() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return time.Now().Before(rl.blockedUntil)
}

// BlockFor - приостанавливает запросы на duration, затем восстанавливает исходный лимит
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	until := time.Now().Add(duration)
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
	rl.limiter.SetLimit(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		// более поздняя блокировка продлевает паузу
		if time.Now().Before(rl.blockedUntil) {
			return
		}
		rl.limiter.SetLimit(rl.limit)
	})
}

// ParseRetryAfter - разбор заголовка Retry-After (секунды или дата)
func ParseRetryAfter(headers http.Header, fallback time.Duration) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return fallback
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
		return 0
	}

	return fallback
}
