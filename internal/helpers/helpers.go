package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// GetID - извлекает положительный идентификатор из параметра маршрута
func GetID(r *http.Request, name string) (int64, error) {
	value := chi.URLParam(r, name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid identifier", name, value)
		return 0, fmt.Errorf("invalid %s: %q", name, value)
	}
	return id, nil
}

// GetDecimalQuery - необязательный числовой параметр запроса
func GetDecimalQuery(r *http.Request, name string) (*decimal.Decimal, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, value)
	}
	return &d, nil
}
