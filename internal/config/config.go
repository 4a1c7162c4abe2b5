package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	CatalogAddr    string        `env:"CATALOG_ADDRESS" envDefault:""`
	KafkaBrokers   string        `env:"KAFKA_BROKERS" envDefault:""`
	EventsTopic    string        `env:"ORDER_EVENTS_TOPIC" envDefault:"order.status"`
	OrderTTL       time.Duration `env:"ORDER_TTL" envDefault:"0s"`
	ExpiryInterval time.Duration `env:"EXPIRY_POLL_INTERVAL" envDefault:"1m"`
	ExpiryBatch    int           `env:"EXPIRY_BATCH_SIZE" envDefault:"50"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
}

// CatalogConfig модель настроек внешнего каталога товаров.
// Пустой адрес - цены берутся из локальной таблицы товаров
type CatalogConfig struct {
	CatalogAddr    string
	RequestTimeout time.Duration
}

// EventsConfig модель настроек публикации событий заказов
type EventsConfig struct {
	Brokers []string
	Topic   string
}

// ExpiryConfig модель настроек отклонения просроченных заказов.
// Нулевой OrderTTL отключает воркер
type ExpiryConfig struct {
	OrderTTL     time.Duration
	PollInterval time.Duration
	BatchSize    int
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Events  EventsConfig
	Expiry  ExpiryConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		catalog  = pflag.StringP("catalog", "c", args.CatalogAddr, "Upstream catalog address, empty to use local products.")
		brokers  = pflag.StringP("kafka", "k", args.KafkaBrokers, "Comma separated Kafka brokers, empty to disable events.")
		topic    = pflag.StringP("topic", "t", args.EventsTopic, "Order events topic.")
		ttl      = pflag.DurationP("order_ttl", "e", args.OrderTTL, "Reject processed orders older than this, 0 to disable.")
		interval = pflag.Duration("expiry_interval", args.ExpiryInterval, "Expiry worker poll interval.")
		batch    = pflag.Int("expiry_batch", args.ExpiryBatch, "Expiry worker batch size.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
		},
		Catalog: CatalogConfig{
			CatalogAddr:    strings.TrimRight(*catalog, "/"),
			RequestTimeout: 5 * time.Second,
		},
		Events: EventsConfig{
			Brokers: SplitBrokers(*brokers),
			Topic:   *topic,
		},
		Expiry: NormalizeExpiry(ExpiryConfig{
			OrderTTL:     *ttl,
			PollInterval: *interval,
			BatchSize:    *batch,
		}),
	}
}

// NormalizeExpiry - недопустимые значения воркера просрочки заменяются значениями по умолчанию
func NormalizeExpiry(cfg ExpiryConfig) ExpiryConfig {
	defaults := DefaultConfig().Expiry
	if cfg.OrderTTL < 0 {
		cfg.OrderTTL = 0
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaults.PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
		},
		Catalog: CatalogConfig{
			RequestTimeout: 5 * time.Second,
		},
		Events: EventsConfig{
			Topic: "order.status",
		},
		Expiry: ExpiryConfig{
			PollInterval: time.Minute,
			BatchSize:    50,
		},
	}
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(list string) []string {
	var brokers []string
	for _, b := range strings.Split(list, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
