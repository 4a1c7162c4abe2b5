package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shop",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	OrderOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "order_operations_total",
			Help:      "Total number of order operations by result",
		},
		[]string{"operation", "result"},
	)
)

// Результаты операций с заказами
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// RecordOrderOperation - учёт операции с заказом.
// rejected - бизнес-отказ (недопустимый переход статуса), error - прочие ошибки
func RecordOrderOperation(operation string, result string) {
	OrderOperations.WithLabelValues(operation, result).Inc()
}

// Handler - обработчик /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
