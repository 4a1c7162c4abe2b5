package models

import (
	"github.com/shopspring/decimal"
)

// Discount - скидка на товар в процентах
type Discount struct {
	Percentage decimal.Decimal
}

// Product - модель товара из хранилища
type Product struct {
	ID        int64
	Name      string
	Category  string
	BasePrice decimal.Decimal
	Discount  *Discount
}

// ProductFilter - параметры отбора товаров витрины
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRequest - модель запроса добавления товара
type ProductRequest struct {
	Name      string          `json:"name" validate:"required,max=200"`
	Category  string          `json:"category" validate:"max=100"`
	BasePrice decimal.Decimal `json:"base_price" validate:"gte=0"`
}

// DiscountRequest - модель запроса установки скидки
type DiscountRequest struct {
	Percentage decimal.Decimal `json:"percentage" validate:"gte=0,lte=100"`
}

// ProductResponse - модель товара для выдачи на витрину
type ProductResponse struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Category           string           `json:"category,omitempty"`
	BasePrice          decimal.Decimal  `json:"base_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	FinalPrice         decimal.Decimal  `json:"final_price"`
}
