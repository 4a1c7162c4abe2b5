package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSplitBrokers(t *testing.T) {
	testCases := []struct {
		Name     string
		List     string
		Expected []string
	}{
		{Name: "Empty #1", List: "", Expected: nil},
		{Name: "Single #2", List: "localhost:9092", Expected: []string{"localhost:9092"}},
		{Name: "Spaces and blanks #3", List: " kafka-1:9092, ,kafka-2:9092 ", Expected: []string{"kafka-1:9092", "kafka-2:9092"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			diff := cmp.Diff(tc.Expected, SplitBrokers(tc.List))
			if len(diff) != 0 {
				t.Errorf("brokers mismatch:\n %s", diff)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Expiry.OrderTTL != 0 {
		t.Errorf("Expected expiry to be disabled by default, got: '%v'", cfg.Expiry.OrderTTL)
	}
	if cfg.Catalog.CatalogAddr != "" {
		t.Errorf("Expected local catalog by default, got: '%s'", cfg.Catalog.CatalogAddr)
	}
}

func TestNormalizeExpiry(t *testing.T) {
	testCases := []struct {
		Name     string
		Config   ExpiryConfig
		Expected ExpiryConfig
	}{
		{
			Name:     "Valid values kept #1",
			Config:   ExpiryConfig{OrderTTL: time.Hour, PollInterval: time.Second, BatchSize: 10},
			Expected: ExpiryConfig{OrderTTL: time.Hour, PollInterval: time.Second, BatchSize: 10},
		},
		{
			Name:     "Negative batch size #2",
			Config:   ExpiryConfig{OrderTTL: time.Hour, PollInterval: time.Second, BatchSize: -5},
			Expected: ExpiryConfig{OrderTTL: time.Hour, PollInterval: time.Second, BatchSize: 50},
		},
		{
			Name:     "Zero interval and negative ttl #3",
			Config:   ExpiryConfig{OrderTTL: -time.Minute, PollInterval: 0, BatchSize: 0},
			Expected: ExpiryConfig{OrderTTL: 0, PollInterval: time.Minute, BatchSize: 50},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			diff := cmp.Diff(tc.Expected, NormalizeExpiry(tc.Config))
			if len(diff) != 0 {
				t.Errorf("expiry config mismatch:\n %s", diff)
			}
		})
	}
}
