package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/reading-billing/internal/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
	router *chi.Mux
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(ctx, cfg, dbPool, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init dependencies: %w", err)
	}
	logger.Info("dependencies initialized",
		zap.Bool("redis", deps.infra.redis != nil),
		zap.Bool("rabbitmq", deps.infra.rabbitChannel != nil),
		zap.Bool("kafka", deps.consumer != nil),
		zap.String("payment_provider", string(cfg.PaymentProvider)),
	)

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
		router: router,
		server: server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.deps.workerPool.Start(ctx)
	a.logger.Info("session sweep started")

	// Запуск приема статусов платежей
	consumerDone := make(chan struct{})
	if a.deps.consumer != nil {
		go func() {
			defer close(consumerDone)
			if err := a.deps.consumer.Start(ctx); err != nil {
				a.logger.Error("payment status consumer stopped", zap.Error(err))
			}
		}()
		a.logger.Info("payment status consumer started", zap.String("topic", a.config.KafkaPaymentTopic))
	} else {
		close(consumerDone)
	}

	// Запуск HTTP сервера и ожидание сигнала завершения
	serveErr := a.runServer()

	// Graceful shutdown
	a.shutdown(cancel, consumerDone)

	return serveErr
}
