package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus - статус заказа
type OrderStatus string

// Статусы заказов
const (
	OrderStatusProcessed OrderStatus = "PROCESSED"
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusRejected  OrderStatus = "REJECTED"
)

// CustomerInfo - контактные данные покупателя
type CustomerInfo struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Address string `json:"address" validate:"required,max=500"`
}

// LineItem - позиция заказа в запросе покупателя
type LineItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// OrderItem - позиция заказа с зафиксированной ценой
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order - модель заказа
type Order struct {
	ID             int64
	Customer       CustomerInfo
	Status         OrderStatus
	CreatedAt      time.Time
	AcceptedAt     *time.Time
	RejectedAt     *time.Time
	RejectedReason *string
	TotalAmount    decimal.Decimal
	Items          []OrderItem
}

// CreateOrderRequest - модель запроса создания заказа
type CreateOrderRequest struct {
	Customer CustomerInfo `json:"customer"`
	Items    []LineItem   `json:"items" validate:"required,min=1,dive"`
}

// RejectOrderRequest - модель запроса отклонения заказа
type RejectOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// OrderItemResponse - позиция заказа для выдачи
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse - модель заказа для выдачи
type OrderResponse struct {
	ID             int64               `json:"id"`
	Customer       CustomerInfo        `json:"customer"`
	Status         OrderStatus         `json:"status"`
	CreatedAt      string              `json:"created_at"`
	AcceptedAt     *string             `json:"accepted_at"`
	RejectedAt     *string             `json:"rejected_at"`
	RejectedReason *string             `json:"rejected_reason"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Items          []OrderItemResponse `json:"items"`
}

// NewOrderResponse - преобразование заказа в модель выдачи
func NewOrderResponse(order Order) OrderResponse {
	response := OrderResponse{
		ID:             order.ID,
		Customer:       order.Customer,
		Status:         order.Status,
		CreatedAt:      order.CreatedAt.Format(time.RFC3339),
		AcceptedAt:     formatTime(order.AcceptedAt),
		RejectedAt:     formatTime(order.RejectedAt),
		RejectedReason: order.RejectedReason,
		TotalAmount:    order.TotalAmount,
		Items:          make([]OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return response
}

// OrderStatusEvent - событие изменения статуса заказа
type OrderStatusEvent struct {
	OrderID     int64           `json:"order_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Reason      *string         `json:"reason,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
