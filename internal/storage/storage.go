package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-shop/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

type ProductsStorage interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetProducts(ctx context.Context, category string) ([]models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (int64, error)
	SetDiscount(ctx context.Context, productID int64, percentage decimal.Decimal) error
	RemoveDiscount(ctx context.Context, productID int64) error
}

// UpdateFunc - изменение заказа внутри транзакции. Ошибка отменяет изменения
type UpdateFunc func(order *models.Order) error

type OrdersStorage interface {
	AddOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id int64, update UpdateFunc) (*models.Order, error)
	GetStaleOrders(ctx context.Context, before time.Time, limit int) ([]int64, error)
}

type Storage struct {
	Products ProductsStorage
	Orders   OrdersStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Products: NewProductsStorage(db), Orders: NewOrdersStorage(db)}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")
)
