package main

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-shop/internal/app"
	"github.com/denmor86/ya-shop/internal/config"
	"github.com/denmor86/ya-shop/internal/logger"
	"github.com/denmor86/ya-shop/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	ctx := context.Background()
	// подключение к базе и миграции
	db, err := storage.NewDatabase(ctx, config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		logger.Panic("can't initialize database", zap.Error(err))
	}

	app.Run(config, storage.NewStorage(db))
}
