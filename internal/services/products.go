package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductsService interface {
	GetProduct(ctx context.Context, id int64) (*models.ProductResponse, error)
	GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.ProductResponse, error)
	AddProduct(ctx context.Context, request models.ProductRequest) (*models.ProductResponse, error)
	SetDiscount(ctx context.Context, productID int64, percentage decimal.Decimal) error
	RemoveDiscount(ctx context.Context, productID int64) error
}

type Products struct {
	Storage storage.ProductsStorage
}

// Создание сервиса
func NewProducts(storage storage.ProductsStorage) *Products {
	return &Products{Storage: storage}
}

// NewProductResponse - товар для витрины, итоговая цена округляется до копейки
func NewProductResponse(product models.Product) models.ProductResponse {
	response := models.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		BasePrice:  product.BasePrice,
		FinalPrice: ProductPrice(product).Round(MoneyScale),
	}
	if product.Discount != nil {
		percentage := product.Discount.Percentage
		response.DiscountPercentage = &percentage
	}
	return response
}

func (s *Products) GetProduct(ctx context.Context, id int64) (*models.ProductResponse, error) {
	product, err := s.Storage.GetProduct(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrProductNotFound) {
			logger.Error("Failed to get product", "product_id", id, zap.Error(err))
		}
		return nil, err
	}
	response := NewProductResponse(*product)
	return &response, nil
}

// GetProducts - товары витрины, границы цены применяются к итоговой цене
func (s *Products) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.ProductResponse, error) {
	products, err := s.Storage.GetProducts(ctx, filter.Category)
	if err != nil {
		logger.Error("Failed to get products", zap.Error(err))
		return nil, err
	}

	response := make([]models.ProductResponse, 0, len(products))
	for _, product := range products {
		item := NewProductResponse(product)
		if filter.MinPrice != nil && item.FinalPrice.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && item.FinalPrice.GreaterThan(*filter.MaxPrice) {
			continue
		}
		response = append(response, item)
	}
	return response, nil
}

func (s *Products) AddProduct(ctx context.Context, request models.ProductRequest) (*models.ProductResponse, error) {
	product := models.Product{
		Name:      request.Name,
		Category:  request.Category,
		BasePrice: request.BasePrice.Round(MoneyScale),
	}
	id, err := s.Storage.AddProduct(ctx, product)
	if err != nil {
		logger.Error("Failed to add product", zap.Error(err))
		return nil, err
	}
	product.ID = id
	logger.Info("Product added", "product_id", id)
	response := NewProductResponse(product)
	return &response, nil
}

func (s *Products) SetDiscount(ctx context.Context, productID int64, percentage decimal.Decimal) error {
	percentage = percentage.Round(MoneyScale)
	if err := s.Storage.SetDiscount(ctx, productID, percentage); err != nil {
		if !errors.Is(err, storage.ErrProductNotFound) {
			logger.Error("Failed to set discount", "product_id", productID, zap.Error(err))
		}
		return err
	}
	logger.Info("Discount set", "product_id", productID, "percentage", percentage.String())
	return nil
}

func (s *Products) RemoveDiscount(ctx context.Context, productID int64) error {
	if err := s.Storage.RemoveDiscount(ctx, productID); err != nil {
		if !errors.Is(err, storage.ErrProductNotFound) {
			logger.Error("Failed to remove discount", "product_id", productID, zap.Error(err))
		}
		return err
	}
	logger.Info("Discount removed", "product_id", productID)
	return nil
}
