package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denmor86/ya-shop/internal/config"
	"github.com/denmor86/ya-shop/internal/logger"
)

func TestLogHandle_RequestID(t *testing.T) {
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	var seen string
	handler := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	testCases := []struct {
		TestName string
		Header   string
	}{
		{TestName: "Success. Request id from header #1", Header: "req-42"},
		{TestName: "Success. Generated request id #2", Header: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tc.Header != "" {
				req.Header.Set(RequestIDHeader, tc.Header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusTeapot {
				t.Errorf("Expected status %d, got %d", http.StatusTeapot, rec.Code)
			}
			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Errorf("Expected request id in header and context, got header '%s', context '%s'", got, seen)
			}
			if tc.Header != "" && got != tc.Header {
				t.Errorf("Expected request id '%s', got '%s'", tc.Header, got)
			}
		})
	}
}
