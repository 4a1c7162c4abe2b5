package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/ya-shop/internal/config"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// OrderExpiryWorker - отклоняет заказы, не обработанные за OrderTTL
type OrderExpiryWorker struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	TTL          time.Duration
	BatchSize    int
	PollInterval time.Duration
}

// NewOrderExpiryWorker - конструктор обработчика просроченных заказов
func NewOrderExpiryWorker(orders services.OrdersService, cfg config.ExpiryConfig) *OrderExpiryWorker {
	return &OrderExpiryWorker{
		Orders:       orders,
		Breaker:      services.InitCircuitBreaker("order-expiry"),
		QuitChan:     make(chan struct{}),
		TTL:          cfg.OrderTTL,
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *OrderExpiryWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *OrderExpiryWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *OrderExpiryWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("OrderExpiryWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessExpired(ctx)
		}
	}
}

// ProcessExpired - обработка пачки просроченных заказов
func (w *OrderExpiryWorker) ProcessExpired(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Service unavailable. Waiting...", "breaker", w.Breaker.Name())
		return
	}

	result, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Orders.ExpireOrders(ctx, w.TTL, w.BatchSize)
	})
	if err != nil {
		logger.Error("Error expire orders", zap.Error(err))
		return
	}
	if expired := result.(int); expired > 0 {
		logger.Info("Expired orders rejected", "count", expired)
	}
}
