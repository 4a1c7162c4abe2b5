package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/ya-shop/internal/client"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/storage"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"go.uber.org/zap"
)

// InitCircuitBreaker - размыкатель для внешних зависимостей
func InitCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 неудачных запросов подряд
			return counts.ConsecutiveFailures >= 5
		},
		// отсутствие товара - корректный ответ каталога
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, client.ErrProductNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// CatalogLookup - получение цен товаров из внешнего каталога
type CatalogLookup struct {
	Client  *client.Client
	Limiter *client.RateLimiter
	Breaker *gobreaker.CircuitBreaker
	Backoff func() retry.Backoff
}

func NewCatalogLookup(baseURL string, timeout time.Duration) *CatalogLookup {
	return &CatalogLookup{
		Client:  client.NewClient(baseURL, &http.Client{Timeout: timeout}),
		Limiter: client.NewRateLimiter(rate.Inf, 1),
		Breaker: InitCircuitBreaker("catalog-service"),
		Backoff: DefaultBackoff,
	}
}

// DefaultBackoff - 3 повтора с экспоненциальной задержкой от 100мс
func DefaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(100*time.Millisecond))
}

// GetProduct - товар из каталога. Временные ошибки каталога повторяются
func (s *CatalogLookup) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if s.Limiter.Blocked() || s.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Catalog unavailable, request skipped", "product_id", id)
		return nil, client.ErrServiceUnavailable
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		var resp *client.ProductResponse
		err := retry.Do(ctx, s.Backoff(), func(ctx context.Context) error {
			var err error
			resp, err = s.Client.GetProduct(ctx, id)
			if errors.Is(err, client.ErrServiceUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		})
		return resp, err
	})
	if err != nil {
		var rateLimitErr *client.RateLimitError
		switch {
		case errors.As(err, &rateLimitErr):
			// проверка большого количества запросов
			logger.Warn("Too many requests to catalog service", "retry_after", rateLimitErr.RetryAfter)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return nil, client.ErrServiceUnavailable
		case errors.Is(err, client.ErrProductNotFound):
			return nil, storage.ErrProductNotFound
		default:
			logger.Error("Catalog request failed", "product_id", id, zap.Error(err))
			return nil, err
		}
	}

	resp := result.(*client.ProductResponse)
	product := &models.Product{
		ID:        id,
		Name:      resp.Name,
		Category:  resp.Category,
		BasePrice: resp.BasePrice,
	}
	if resp.DiscountPercentage != nil {
		product.Discount = &models.Discount{Percentage: *resp.DiscountPercentage}
	}
	return product, nil
}
