package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/ya-shop/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// MoneyScale - число знаков после запятой в денежных суммах
const MoneyScale = 2

// DefaultRejectReason - причина отклонения, если она не указана
const DefaultRejectReason = "Order rejected"

// События жизненного цикла заказа
const (
	EventAccept = "accept"
	EventReject = "reject"
)

// TransitionError - недопустимый переход статуса заказа.
// Сообщение предназначено пользователю как есть
type TransitionError struct {
	OrderID int64
	Status  models.OrderStatus
	Event   string
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ProductLookup - получение текущих данных товара
type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// OrderLifecycle - создание заказов и переходы статусов.
// Не обращается к хранилищу заказов и не пишет логов: работает с переданными данными
type OrderLifecycle struct {
	Products ProductLookup
	Now      func() time.Time
}

func NewOrderLifecycle(products ProductLookup) *OrderLifecycle {
	return &OrderLifecycle{
		Products: products,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder - новый заказ со снимком базовых цен товаров на момент создания.
// Количество не проверяется, это делает вызывающая сторона
func (l *OrderLifecycle) CreateOrder(ctx context.Context, customer models.CustomerInfo, items []models.LineItem) (*models.Order, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := l.Products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			// цена хранится с точностью до копейки, сумма считается по сохраняемому значению
			UnitPrice: product.BasePrice.Round(MoneyScale),
		})
	}

	return &models.Order{
		Customer:    customer,
		Status:      models.OrderStatusProcessed,
		CreatedAt:   l.Now(),
		TotalAmount: OrderTotal(orderItems),
		Items:       orderItems,
	}, nil
}

// OrderTotal - сумма quantity × unitPrice по позициям
func OrderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Accept - подтверждение заказа. Повторное подтверждение - ошибка
func (l *OrderLifecycle) Accept(order *models.Order) error {
	switch order.Status {
	case models.OrderStatusProcessed:
	case models.OrderStatusAccepted:
		return newTransitionError(order, EventAccept, "order already accepted")
	case models.OrderStatusRejected:
		return newTransitionError(order, EventAccept, "rejected order cannot be accepted")
	default:
		return newTransitionError(order, EventAccept, fmt.Sprintf("order in status %s cannot be accepted", order.Status))
	}

	now := l.Now()
	order.Status = models.OrderStatusAccepted
	order.AcceptedAt = &now
	return nil
}

// Reject - отклонение заказа. Пустая причина заменяется на DefaultRejectReason
func (l *OrderLifecycle) Reject(order *models.Order, reason string) error {
	switch order.Status {
	case models.OrderStatusProcessed:
	case models.OrderStatusRejected:
		return newTransitionError(order, EventReject, "order already rejected")
	case models.OrderStatusAccepted:
		return newTransitionError(order, EventReject, "accepted order cannot be rejected")
	default:
		return newTransitionError(order, EventReject, fmt.Sprintf("order in status %s cannot be rejected", order.Status))
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectReason
	}
	now := l.Now()
	order.Status = models.OrderStatusRejected
	order.RejectedAt = &now
	order.RejectedReason = &reason
	return nil
}

func newTransitionError(order *models.Order, event string, message string) *TransitionError {
	return &TransitionError{
		OrderID: order.ID,
		Status:  order.Status,
		Event:   event,
		Message: message,
	}
}
