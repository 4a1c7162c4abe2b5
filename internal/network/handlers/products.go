package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/ya-shop/internal/helpers"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/models"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/denmor86/ya-shop/internal/validators"
	"go.uber.org/zap"
)

// GetProductsHandler — витрина товаров с итоговыми ценами
func GetProductsHandler(s services.ProductsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := models.ProductFilter{Category: r.URL.Query().Get("category")}
		var err error
		if filter.MinPrice, err = helpers.GetDecimalQuery(r, "min_price"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if filter.MaxPrice, err = helpers.GetDecimalQuery(r, "max_price"); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		products, err := s.GetProducts(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, products)
	})
}

// GetProductHandler — товар по идентификатору
func GetProductHandler(s services.ProductsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		product, err := s.GetProduct(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
	})
}

// AddProductHandler — добавление товара в каталог
func AddProductHandler(s services.ProductsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer closeBody(r)

		var request models.ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckRequest(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		product, err := s.AddProduct(r.Context(), request)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, product)
	})
}

// SetDiscountHandler — установка скидки на товар
func SetDiscountHandler(s services.ProductsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer closeBody(r)

		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var request models.DiscountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckRequest(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.SetDiscount(r.Context(), id, request.Percentage); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// RemoveDiscountHandler — отмена скидки
func RemoveDiscountHandler(s services.ProductsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := helpers.GetID(r, "id")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.RemoveDiscount(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
