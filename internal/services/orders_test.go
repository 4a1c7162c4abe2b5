package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/denmor86/ya-shop/internal/config"
	eventmocks "github.com/denmor86/ya-shop/internal/events/mocks"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/storage"
	"github.com/denmor86/ya-shop/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

// applyUpdate - имитация UpdateOrder: функция изменения применяется к заказу из хранилища
func applyUpdate(order models.Order) func(ctx context.Context, id int64, update storage.UpdateFunc) (*models.Order, error) {
	return func(ctx context.Context, id int64, update storage.UpdateFunc) (*models.Order, error) {
		if err := update(&order); err != nil {
			return nil, err
		}
		return &order, nil
	}
}

func TestOrdersService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockProducts := mocks.NewMockProductsStorage(ctrl)
	mockEvents := eventmocks.NewMockPublisher(ctrl)

	initTestLogger(t)

	orders := NewOrders(mockOrders, mockProducts, mockEvents)

	testCases := []struct {
		TestName      string
		Items         []models.LineItem
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success. Order created #1",
			Items:    []models.LineItem{{ProductID: 1, Quantity: 2}},
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(&models.Product{ID: 1, BasePrice: decimalFrom("20")}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, order *models.Order) error {
					order.ID = 5
					return nil
				})
				mockEvents.EXPECT().Publish(gomock.Any(), "5", gomock.Any()).DoAndReturn(func(ctx context.Context, key string, event any) error {
					e, ok := event.(models.OrderStatusEvent)
					if !ok || e.Status != models.OrderStatusProcessed || !e.TotalAmount.Equal(decimalFrom("40")) {
						t.Errorf("Unexpected event: %+v", event)
					}
					return nil
				})
			},
		},
		{
			TestName: "Error. Product not found #2",
			Items:    []models.LineItem{{ProductID: 3, Quantity: 1}},
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(nil, fmt.Errorf("product %w", storage.ErrProductNotFound))
			},
			ExpectedError: fmt.Errorf("product %w", storage.ErrProductNotFound),
		},
		{
			TestName: "Error. Add order failure #3",
			Items:    []models.LineItem{{ProductID: 1, Quantity: 1}},
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(&models.Product{ID: 1, BasePrice: decimalFrom("20")}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to add order"),
		},
		{
			TestName: "Success. Publish failure ignored #4",
			Items:    []models.LineItem{{ProductID: 1, Quantity: 1}},
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(&models.Product{ID: 1, BasePrice: decimalFrom("20")}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)
				mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := orders.CreateOrder(ctx, testCustomer(), tc.Items)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestOrdersService_AcceptOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	initTestLogger(t)

	// без публикации событий
	orders := NewOrders(mockOrders, nil, nil)

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedStatus models.OrderStatus
		ExpectedError  error
	}{
		{
			TestName: "Success. Order accepted #1",
			SetupMocks: func() {
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(applyUpdate(models.Order{ID: 1, Status: models.OrderStatusProcessed}))
			},
			ExpectedStatus: models.OrderStatusAccepted,
		},
		{
			TestName: "Error. Already accepted #2",
			SetupMocks: func() {
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(applyUpdate(models.Order{ID: 1, Status: models.OrderStatusAccepted}))
			},
			ExpectedError: errors.New("order already accepted"),
		},
		{
			TestName: "Error. Order not found #3",
			SetupMocks: func() {
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(1), gomock.Any()).Return(nil, fmt.Errorf("order %w", storage.ErrOrderNotFound))
			},
			ExpectedError: fmt.Errorf("order %w", storage.ErrOrderNotFound),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			order, err := orders.AcceptOrder(context.Background(), 1)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && order.Status != tc.ExpectedStatus {
				t.Errorf("Expected status %s, got %s", tc.ExpectedStatus, order.Status)
			}
		})
	}
}

func TestOrdersService_RejectOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockEvents := eventmocks.NewMockPublisher(ctrl)

	initTestLogger(t)

	orders := NewOrders(mockOrders, nil, mockEvents)

	mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(applyUpdate(models.Order{ID: 2, Status: models.OrderStatusProcessed}))
	mockEvents.EXPECT().Publish(gomock.Any(), "2", gomock.Any()).DoAndReturn(func(ctx context.Context, key string, event any) error {
		e := event.(models.OrderStatusEvent)
		if e.Status != models.OrderStatusRejected || e.Reason == nil || *e.Reason != "Out of stock" {
			t.Errorf("Unexpected event: %+v", e)
		}
		return nil
	})

	order, err := orders.RejectOrder(context.Background(), 2, " Out of stock ")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if order.Status != models.OrderStatusRejected || order.RejectedAt == nil {
		t.Errorf("Expected rejected order, got %+v", order)
	}

	// повторное отклонение не публикует событие
	mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(applyUpdate(*order))
	_, err = orders.RejectOrder(context.Background(), 2, "")
	if !errors.Is(err, ErrInvalidTransition) || err.Error() != "order already rejected" {
		t.Errorf("Expected 'order already rejected', got '%v'", err)
	}
}

func TestOrdersService_ExpireOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	initTestLogger(t)

	orders := NewOrders(mockOrders, nil, nil)
	orders.Lifecycle.Now = func() time.Time { return fixedNow }

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		Expected      int
		ExpectedError error
	}{
		{
			TestName: "Success. Stale orders rejected #1",
			SetupMocks: func() {
				mockOrders.EXPECT().GetStaleOrders(gomock.Any(), fixedNow.Add(-time.Hour), 10).Return([]int64{1, 2, 3}, nil)
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(ctx context.Context, id int64, update storage.UpdateFunc) (*models.Order, error) {
						order := models.Order{ID: id, Status: models.OrderStatusProcessed}
						if err := update(&order); err != nil {
							return nil, err
						}
						if *order.RejectedReason != ExpiredRejectReason {
							t.Errorf("Expected reason '%s', got '%s'", ExpiredRejectReason, *order.RejectedReason)
						}
						return &order, nil
					})
				// принят между выборкой и отклонением
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(2), gomock.Any()).
					DoAndReturn(applyUpdate(models.Order{ID: 2, Status: models.OrderStatusAccepted}))
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(applyUpdate(models.Order{ID: 3, Status: models.OrderStatusProcessed}))
			},
			Expected: 2,
		},
		{
			TestName: "Success. Nothing to expire #2",
			SetupMocks: func() {
				mockOrders.EXPECT().GetStaleOrders(gomock.Any(), gomock.Any(), 10).Return(nil, nil)
			},
			Expected: 0,
		},
		{
			TestName: "Error. Storage failure #3",
			SetupMocks: func() {
				mockOrders.EXPECT().GetStaleOrders(gomock.Any(), gomock.Any(), 10).Return(nil, errors.New("db down"))
			},
			ExpectedError: errors.New("db down"),
		},
		{
			TestName: "Error. Update failure stops batch #4",
			SetupMocks: func() {
				mockOrders.EXPECT().GetStaleOrders(gomock.Any(), gomock.Any(), 10).Return([]int64{4, 5}, nil)
				mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(4), gomock.Any()).Return(nil, errors.New("db down"))
			},
			ExpectedError: errors.New("db down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			count, err := orders.ExpireOrders(context.Background(), time.Hour, 10)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && count != tc.Expected {
				t.Errorf("Expected %d expired orders, got %d", tc.Expected, count)
			}
		})
	}
}

func TestOrdersService_GetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	initTestLogger(t)

	orders := NewOrders(mockOrders, nil, nil)

	mockOrders.EXPECT().GetOrder(gomock.Any(), int64(9)).Return(nil, fmt.Errorf("order %w", storage.ErrOrderNotFound))
	if _, err := orders.GetOrder(context.Background(), 9); !errors.Is(err, storage.ErrOrderNotFound) {
		t.Errorf("Expected not found, got '%v'", err)
	}

	mockOrders.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(&models.Order{ID: 1, Status: models.OrderStatusProcessed}, nil)
	order, err := orders.GetOrder(context.Background(), 1)
	if err != nil || order.ID != 1 {
		t.Errorf("Expected order 1, got %+v, '%v'", order, err)
	}
}

func TestOrdersService_PublishTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockEvents := eventmocks.NewMockPublisher(ctrl)

	initTestLogger(t)

	orders := NewOrders(mockOrders, nil, mockEvents)
	orders.PublishTimeout = 50 * time.Millisecond

	mockOrders.EXPECT().UpdateOrder(gomock.Any(), int64(6), gomock.Any()).
		DoAndReturn(applyUpdate(models.Order{ID: 6, Status: models.OrderStatusProcessed}))
	// брокер не отвечает: публикация ждёт отмены контекста
	mockEvents.EXPECT().Publish(gomock.Any(), "6", gomock.Any()).DoAndReturn(func(ctx context.Context, key string, event any) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("Expected publish context with deadline")
		}
		<-ctx.Done()
		return ctx.Err()
	})

	start := time.Now()
	order, err := orders.AcceptOrder(context.Background(), 6)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if order.Status != models.OrderStatusAccepted {
		t.Errorf("Expected status %s, got %s", models.OrderStatusAccepted, order.Status)
	}
	if elapsed > time.Second {
		t.Errorf("Expected accept to return after publish timeout, took %v", elapsed)
	}
}
