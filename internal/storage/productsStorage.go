package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-shop/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	GetProduct = `SELECT p.id, p.name, p.category, p.base_price, d.percentage
				  FROM PRODUCTS p
				  LEFT JOIN DISCOUNTS d ON d.product_id = p.id
				  WHERE p.id=$1;`
	GetProducts = `SELECT p.id, p.name, p.category, p.base_price, d.percentage
				   FROM PRODUCTS p
				   LEFT JOIN DISCOUNTS d ON d.product_id = p.id
				   WHERE ($1::text = '' OR p.category = $1::text)
				   ORDER BY p.id;`
	InsertProduct  = `INSERT INTO PRODUCTS (name, category, base_price) VALUES ($1, $2, $3) RETURNING id;`
	UpsertDiscount = `INSERT INTO DISCOUNTS (product_id, percentage)
					  VALUES ($1, $2)
					  ON CONFLICT (product_id) DO UPDATE SET percentage = EXCLUDED.percentage;`
	DeleteDiscount = `DELETE FROM DISCOUNTS WHERE product_id=$1;`
	ProductExists  = `SELECT EXISTS(SELECT 1 FROM PRODUCTS WHERE id=$1);`
)

// код ошибки нарушения внешнего ключа
const foreignKeyViolation = "23503"

type ProductDatabase struct {
	DB *Database
}

// Создание хранилища
func NewProductsStorage(db *Database) ProductsStorage {
	return &ProductDatabase{DB: db}
}

func (s *ProductDatabase) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := scanProduct(s.DB.Pool.QueryRow(ctx, GetProduct, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *ProductDatabase) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	rows, err := s.DB.Pool.Query(ctx, GetProducts, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return products, fmt.Errorf("failed scan product data: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (s *ProductDatabase) AddProduct(ctx context.Context, product models.Product) (int64, error) {
	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertProduct, product.Name, product.Category, product.BasePrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add product: %w", err)
	}
	return id, nil
}

func (s *ProductDatabase) SetDiscount(ctx context.Context, productID int64, percentage decimal.Decimal) error {
	_, err := s.DB.Pool.Exec(ctx, UpsertDiscount, productID, percentage)
	if err == nil {
		return nil
	}
	// скидка на несуществующий товар
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrProductNotFound
	}
	return fmt.Errorf("failed to set discount: %w", err)
}

func (s *ProductDatabase) RemoveDiscount(ctx context.Context, productID int64) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteDiscount, productID)
	if err != nil {
		return fmt.Errorf("failed to remove discount: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// скидки не было - проверяем что товар существует
	var exist bool
	if err := s.DB.Pool.QueryRow(ctx, ProductExists, productID).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check product exists: %w", err)
	}
	if !exist {
		return ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var (
		product  models.Product
		discount decimal.NullDecimal
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.BasePrice,
		&discount,
	)
	if err != nil {
		return nil, err
	}
	if discount.Valid {
		product.Discount = &models.Discount{Percentage: discount.Decimal}
	}
	return &product, nil
}
