package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-shop/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertOrder = `INSERT INTO ORDERS (customer_name, customer_email, customer_phone, customer_address, status, total_amount, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7)
				   RETURNING id;`
	InsertOrderItem = `INSERT INTO ORDER_ITEMS (order_id, position, product_id, quantity, unit_price)
					   VALUES ($1, $2, $3, $4, $5);`
	SelectOrder = `SELECT id, customer_name, customer_email, customer_phone, customer_address,
				   status, total_amount, created_at, accepted_at, rejected_at, rejected_reason
				   FROM ORDERS`
	GetOrder          = SelectOrder + ` WHERE id=$1;`
	GetOrderForUpdate = SelectOrder + ` WHERE id=$1 FOR UPDATE;`
	GetOrders         = SelectOrder + ` ORDER BY created_at DESC, id DESC;`
	GetOrderItems     = `SELECT order_id, product_id, quantity, unit_price
						 FROM ORDER_ITEMS
						 WHERE order_id = ANY($1)
						 ORDER BY order_id, position;`
	UpdateOrderStatus = `UPDATE ORDERS
						 SET status = $1,
						     accepted_at = $2,
						     rejected_at = $3,
						     rejected_reason = $4
						 WHERE id = $5;`
	GetStaleOrders = `SELECT id FROM ORDERS
					  WHERE status = $1 AND created_at < $2
					  ORDER BY created_at
					  LIMIT $3;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

// AddOrder - сохраняет заказ и его позиции в одной транзакции, проставляет идентификатор заказа
func (s *OrderDatabase) AddOrder(ctx context.Context, order *models.Order) error {
	return s.DB.WithTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, InsertOrder,
			order.Customer.Name,
			order.Customer.Email,
			order.Customer.Phone,
			order.Customer.Address,
			string(order.Status),
			order.TotalAmount,
			order.CreatedAt,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to add order: %w", err)
		}

		if len(order.Items) > 0 {
			batch := &pgx.Batch{}
			for i, item := range order.Items {
				batch.Queue(InsertOrderItem, id, i, item.ProductID, item.Quantity, item.UnitPrice)
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("failed to add order items: %w", err)
			}
		}

		order.ID = id
		return nil
	})
}

func (s *OrderDatabase) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return getOrder(ctx, s.DB.Pool, GetOrder, id)
}

func (s *OrderDatabase) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.DB.Pool.Query(ctx, GetOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []models.Order
		ids    []int64
	)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	// позиции всех заказов одним запросом
	items, err := getOrderItems(ctx, s.DB.Pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// UpdateOrder - чтение заказа с блокировкой строки, изменение и запись в одной транзакции.
// Конкурирующие изменения одного заказа выполняются строго по очереди
func (s *OrderDatabase) UpdateOrder(ctx context.Context, id int64, update UpdateFunc) (*models.Order, error) {
	var order *models.Order
	err := s.DB.WithTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var err error
		order, err = getOrder(ctx, tx, GetOrderForUpdate, id)
		if err != nil {
			return err
		}
		if err = update(order); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, UpdateOrderStatus,
			string(order.Status),
			order.AcceptedAt,
			order.RejectedAt,
			order.RejectedReason,
			id,
		)
		if err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetStaleOrders - идентификаторы необработанных заказов, созданных раньше before
func (s *OrderDatabase) GetStaleOrders(ctx context.Context, before time.Time, limit int) ([]int64, error) {
	rows, err := s.DB.Pool.Query(ctx, GetStaleOrders, string(models.OrderStatusProcessed), before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale orders: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("failed scan stale order id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func getOrder(ctx context.Context, q Querier, query string, id int64) (*models.Order, error) {
	order, err := scanOrder(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	items, err := getOrderItems(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return order, nil
}

func getOrderItems(ctx context.Context, q Querier, ids []int64) (map[int64][]models.OrderItem, error) {
	rows, err := q.Query(ctx, GetOrderItems, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]models.OrderItem, len(ids))
	for rows.Next() {
		var (
			orderID int64
			item    models.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order  models.Order
		status string
	)
	err := row.Scan(
		&order.ID,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.Customer.Address,
		&status,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.AcceptedAt,
		&order.RejectedAt,
		&order.RejectedReason,
	)
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatus(status)
	return &order, nil
}
