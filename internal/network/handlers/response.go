package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/ya-shop/internal/client"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/denmor86/ya-shop/internal/storage"
	"go.uber.org/zap"
)

// writeJSON - ответ в формате JSON с заданным кодом
func writeJSON(w http.ResponseWriter, status int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// writeError - код ответа по ошибке сервиса
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidTransition):
		// сообщение перехода отдаётся клиенту как есть
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrProductNotFound):
		http.Error(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, client.ErrServiceUnavailable):
		http.Error(w, "Catalog service unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}

func closeBody(r *http.Request) {
	if err := r.Body.Close(); err != nil {
		logger.Error("Error to close body:", zap.Error(err))
	}
}
