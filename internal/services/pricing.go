package services

import (
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice - цена товара для покупателя с учётом скидки, без округления.
// Скидка вне диапазона (0, 100] не применяется, цена не бывает отрицательной
func EffectivePrice(basePrice decimal.Decimal, discountPercentage *decimal.Decimal) decimal.Decimal {
	if discountPercentage == nil ||
		discountPercentage.LessThanOrEqual(decimal.Zero) ||
		discountPercentage.GreaterThan(hundred) {
		return basePrice
	}
	price := basePrice.Sub(basePrice.Mul(*discountPercentage).Div(hundred))
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// ProductPrice - текущая цена товара на витрине
func ProductPrice(product models.Product) decimal.Decimal {
	if product.Discount == nil {
		return product.BasePrice
	}
	return EffectivePrice(product.BasePrice, &product.Discount.Percentage)
}
