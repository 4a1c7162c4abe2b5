package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denmor86/ya-shop/internal/helpers"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/denmor86/ya-shop/internal/validators"
	"go.uber.org/zap"
)

// CreateOrderHandler — оформление заказа покупателем
func CreateOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer closeBody(r)

		var request models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckRequest(request); err != nil {
			logger.Warn("Invalid order request:", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		order, err := s.CreateOrder(r.Context(), request.Customer, request.Items)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewOrderResponse(*order))
	})
}

// GetOrderHandler — получение заказа по номеру
func GetOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		order, err := s.GetOrder(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewOrderResponse(*order))
	})
}

// GetOrdersHandler — список всех заказов
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := s.GetOrders(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.OrderResponse, 0, len(orders))
		for _, order := range orders {
			response = append(response, models.NewOrderResponse(order))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// AcceptOrderHandler — подтверждение заказа
func AcceptOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		order, err := s.AcceptOrder(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewOrderResponse(*order))
	})
}

// RejectOrderHandler — отклонение заказа, тело с причиной необязательно
func RejectOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer closeBody(r)

		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var request models.RejectOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckRequest(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		order, err := s.RejectOrder(r.Context(), id, request.Reason)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewOrderResponse(*order))
	})
}
