package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-shop/internal/config"
	"github.com/denmor86/ya-shop/internal/events"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/network/router"
	"github.com/denmor86/ya-shop/internal/services"
	"github.com/denmor86/ya-shop/internal/storage"
	"github.com/denmor86/ya-shop/internal/worker"
	"go.uber.org/zap"
)

// productLookup - источник цен для новых заказов: внешний каталог или собственная таблица товаров
func productLookup(config config.Config, storage storage.Storage) services.ProductLookup {
	if config.Catalog.CatalogAddr != "" {
		logger.Info("Using external catalog", "address", config.Catalog.CatalogAddr)
		return services.NewCatalogLookup(config.Catalog.CatalogAddr, config.Catalog.RequestTimeout)
	}
	return storage.Products
}

func Run(config config.Config, storage storage.Storage) {
	var publisher events.Publisher
	if len(config.Events.Brokers) > 0 {
		producer := events.NewProducer(config.Events.Brokers, config.Events.Topic)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Error("error close producer", zap.Error(err))
			}
		}()
		publisher = producer
	}

	products := services.NewProducts(storage.Products)
	orders := services.NewOrders(storage.Orders, productLookup(config, storage), publisher)
	router := router.NewRouter(config, products, orders)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// воркер просрочки включается только при заданном ORDER_TTL
	var expiry *worker.OrderExpiryWorker
	if config.Expiry.OrderTTL > 0 {
		expiry = worker.NewOrderExpiryWorker(orders, config.Expiry)
		expiry.Start(ctx)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server", "address", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", zap.Error(err))
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	if expiry != nil {
		expiry.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", zap.Error(err))
	}
	logger.Info("Server stopped")
}
