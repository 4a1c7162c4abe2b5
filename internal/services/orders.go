package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/denmor86/ya-shop/internal/events"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/metrics"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/storage"
	"go.uber.org/zap"
)

// ExpiredRejectReason - причина отклонения просроченного заказа
const ExpiredRejectReason = "Order expired"

// Операции с заказами для метрик
const (
	OperationCreate = "create"
	OperationAccept = "accept"
	OperationReject = "reject"
)

type OrdersService interface {
	CreateOrder(ctx context.Context, customer models.CustomerInfo, items []models.LineItem) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	AcceptOrder(ctx context.Context, id int64) (*models.Order, error)
	RejectOrder(ctx context.Context, id int64, reason string) (*models.Order, error)
	ExpireOrders(ctx context.Context, ttl time.Duration, limit int) (int, error)
}

// DefaultPublishTimeout - ограничение времени публикации события
const DefaultPublishTimeout = 2 * time.Second

type Orders struct {
	Storage        storage.OrdersStorage
	Lifecycle      *OrderLifecycle
	Events         events.Publisher
	PublishTimeout time.Duration
}

// Создание сервиса. publisher может быть nil - события не публикуются
func NewOrders(orders storage.OrdersStorage, products ProductLookup, publisher events.Publisher) *Orders {
	return &Orders{
		Storage:        orders,
		Lifecycle:      NewOrderLifecycle(products),
		Events:         publisher,
		PublishTimeout: DefaultPublishTimeout,
	}
}

// CreateOrder - создаёт и сохраняет новый заказ
func (s *Orders) CreateOrder(ctx context.Context, customer models.CustomerInfo, items []models.LineItem) (*models.Order, error) {
	order, err := s.Lifecycle.CreateOrder(ctx, customer, items)
	if err != nil {
		logger.Warn("Failed to build order", zap.Error(err))
		s.record(OperationCreate, err)
		return nil, err
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		logger.Error("Failed to add order", zap.Error(err))
		s.record(OperationCreate, err)
		return nil, err
	}

	logger.Info("Order created", "order_id", order.ID, "total", order.TotalAmount.String())
	s.record(OperationCreate, nil)
	s.publish(ctx, order)
	return order, nil
}

func (s *Orders) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.Storage.GetOrder(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrOrderNotFound) {
			logger.Error("Failed to get order", "order_id", id, zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

func (s *Orders) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Storage.GetOrders(ctx)
	if err != nil {
		logger.Error("Failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// AcceptOrder - подтверждение заказа
func (s *Orders) AcceptOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.transition(ctx, id, OperationAccept, func(order *models.Order) error {
		return s.Lifecycle.Accept(order)
	})
}

// RejectOrder - отклонение заказа с причиной
func (s *Orders) RejectOrder(ctx context.Context, id int64, reason string) (*models.Order, error) {
	return s.transition(ctx, id, OperationReject, func(order *models.Order) error {
		return s.Lifecycle.Reject(order, reason)
	})
}

// ExpireOrders - отклоняет необработанные заказы старше ttl, возвращает число отклонённых
func (s *Orders) ExpireOrders(ctx context.Context, ttl time.Duration, limit int) (int, error) {
	before := s.Lifecycle.Now().Add(-ttl)
	ids, err := s.Storage.GetStaleOrders(ctx, before, limit)
	if err != nil {
		logger.Error("Failed to get stale orders", zap.Error(err))
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		_, err := s.RejectOrder(ctx, id, ExpiredRejectReason)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, storage.ErrOrderNotFound):
			// заказ успели обработать
			logger.Debug("Stale order skipped", "order_id", id, zap.Error(err))
		default:
			return expired, err
		}
	}
	return expired, nil
}

// transition - чтение, проверка и запись заказа выполняются хранилищем атомарно
func (s *Orders) transition(ctx context.Context, id int64, operation string, apply storage.UpdateFunc) (*models.Order, error) {
	order, err := s.Storage.UpdateOrder(ctx, id, apply)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransition):
			logger.Warn("Invalid order transition", "order_id", id, "operation", operation, zap.Error(err))
		case errors.Is(err, storage.ErrOrderNotFound):
			logger.Warn("Order not found", "order_id", id, "operation", operation)
		default:
			logger.Error("Failed to update order", "order_id", id, "operation", operation, zap.Error(err))
		}
		s.record(operation, err)
		return nil, err
	}

	logger.Info("Order status changed", "order_id", id, "status", order.Status)
	s.record(operation, nil)
	s.publish(ctx, order)
	return order, nil
}

func (s *Orders) record(operation string, err error) {
	switch {
	case err == nil:
		metrics.RecordOrderOperation(operation, metrics.ResultSuccess)
	case errors.Is(err, ErrInvalidTransition):
		metrics.RecordOrderOperation(operation, metrics.ResultRejected)
	default:
		metrics.RecordOrderOperation(operation, metrics.ResultError)
	}
}

// publish - ошибка публикации не отменяет сохранённое изменение заказа
func (s *Orders) publish(ctx context.Context, order *models.Order) {
	if s.Events == nil {
		return
	}
	event := models.OrderStatusEvent{
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Reason:      order.RejectedReason,
		Timestamp:   s.Lifecycle.Now(),
	}
	// недоступный брокер не должен задерживать ответ дольше PublishTimeout
	timeout := s.PublishTimeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := s.Events.Publish(publishCtx, strconv.FormatInt(order.ID, 10), event); err != nil {
		logger.Error("Failed to publish order event", "order_id", order.ID, zap.Error(err))
	}
}
