package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/denmor86/ya-shop/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// MetricsHandle — учёт количества и длительности HTTP-запросов по шаблону маршрута
func MetricsHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := newLoggingResponseWriter(w)

		h.ServeHTTP(lw, r)

		// шаблон вместо пути, чтобы идентификаторы не раздували метки
		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(lw.responseData.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
