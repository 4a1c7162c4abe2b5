package client

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse - товар в ответе внешнего каталога
type ProductResponse struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Category           string           `json:"category"`
	BasePrice          decimal.Decimal  `json:"base_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
}

var (
	ErrServiceUnavailable = errors.New("catalog service unavailable")
	ErrProductNotFound    = errors.New("product not found in catalog")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers, time.Minute),
	}
}
