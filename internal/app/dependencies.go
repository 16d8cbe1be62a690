package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avc/reading-billing/internal/broker"
	"github.com/avc/reading-billing/internal/config"
	"github.com/avc/reading-billing/internal/domain"
	"github.com/avc/reading-billing/internal/events"
	"github.com/avc/reading-billing/internal/handlers"
	"github.com/avc/reading-billing/internal/repository/cache"
	"github.com/avc/reading-billing/internal/repository/postgres"
	"github.com/avc/reading-billing/internal/service"
	"github.com/avc/reading-billing/internal/utils/jwt"
	"github.com/avc/reading-billing/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// infrastructure внешние подключения. Необязательные поля равны nil,
// если соответствующий адрес не задан в конфигурации.
type infrastructure struct {
	db            *pgxpool.Pool
	redis         *redis.Client
	rabbitConn    *amqp.Connection
	rabbitChannel *amqp.Channel
	consumerGroup sarama.ConsumerGroup
}

// close закрывает подключения в порядке, обратном открытию
func (i *infrastructure) close() error {
	var errs error
	if i.consumerGroup != nil {
		errs = multierr.Append(errs, i.consumerGroup.Close())
	}
	if i.rabbitChannel != nil {
		errs = multierr.Append(errs, i.rabbitChannel.Close())
	}
	if i.rabbitConn != nil {
		errs = multierr.Append(errs, i.rabbitConn.Close())
	}
	if i.redis != nil {
		errs = multierr.Append(errs, i.redis.Close())
	}
	i.db.Close()
	return errs
}

// services содержит все сервисы приложения
type services struct {
	reading  *service.ReadingService
	payments *service.PaymentService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	sessions *handlers.SessionsHandler
	payments *handlers.PaymentsHandler
	health   *handlers.HealthHandler
	metrics  *handlers.HTTPMetrics
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	infra      *infrastructure
	services   *services
	handlers   *handlerSet
	registry   *prometheus.Registry
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	consumer   *broker.PaymentStatusConsumer
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	infra := &infrastructure{db: dbPool}
	deps, err := wire(ctx, cfg, infra, logger)
	if err != nil {
		if closeErr := infra.close(); closeErr != nil {
			logger.Warn("failed to release connections", zap.Error(closeErr))
		}
		return nil, err
	}
	return deps, nil
}

func wire(ctx context.Context, cfg *config.Config, infra *infrastructure, logger *zap.Logger) (*dependencies, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clock := domain.SystemClock{}
	transactor := postgres.NewTransactor(infra.db, logger)
	repos := transactor.Repositories()

	// Необязательная защита от повторной записи пакетов
	var idempotency domain.IdempotencyStore
	if cfg.RedisAddress != "" {
		rdb, err := cache.NewClient(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, err
		}
		infra.redis = rdb
		idempotency = cache.NewIdempotencyStore(rdb, cfg.ChargeIdempotencyTTL)
		logger.Info("charge idempotency enabled", zap.String("redis", cfg.RedisAddress))
	}

	catalog := service.NewCatalogClient(cfg.CatalogServiceAddress, service.DefaultCatalogOptions(), logger)

	// Обработчики доменных событий
	dispatcher := events.NewDispatcher(logger, events.NewMetrics(registry))
	dispatcher.RegisterAll("log", events.LogHandler(logger))

	earnings := service.NewEarningsHandler(repos, catalog, cfg.CommissionRate, clock, logger)
	dispatcher.Register("author-earnings", earnings.Handle, service.EarningsKinds...)

	if cfg.RabbitMQURL != "" {
		conn, ch, err := broker.DialRabbit(cfg.RabbitMQURL)
		if err != nil {
			return nil, err
		}
		infra.rabbitConn, infra.rabbitChannel = conn, ch

		publisher, err := broker.NewRabbitPublisher(ch, cfg.RabbitMQExchange, logger)
		if err != nil {
			return nil, err
		}
		dispatcher.RegisterAll("rabbitmq", publisher.Handle)
		logger.Info("event publishing enabled", zap.String("exchange", cfg.RabbitMQExchange))
	}

	uow := service.NewUnitOfWork(transactor, dispatcher, logger)
	svcs := &services{
		reading:  service.NewReadingService(uow, repos, catalog, idempotency, clock, cfg.PaymentProvider, logger),
		payments: service.NewPaymentService(uow, repos, clock, cfg.CommissionRate, logger),
	}

	// Прием статусов платежей от шлюза провайдеров
	var consumer *broker.PaymentStatusConsumer
	if len(cfg.KafkaBrokers) > 0 {
		group, err := broker.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaGroupID)
		if err != nil {
			return nil, err
		}
		infra.consumerGroup = group
		consumer = broker.NewPaymentStatusConsumer(group, []string{cfg.KafkaPaymentTopic}, svcs.payments, logger)
	}

	// Создание handlers
	health := handlers.NewHealthHandler(infra.db, logger)
	if infra.redis != nil {
		rdb := infra.redis
		health.WithCheck("redis", handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}
	hdlrs := &handlerSet{
		sessions: handlers.NewSessionsHandler(svcs.reading, logger),
		payments: handlers.NewPaymentsHandler(svcs.payments, logger),
		health:   health,
		metrics:  handlers.NewHTTPMetrics(registry),
	}

	// Создание worker pool
	workerPool := worker.NewPool(worker.Options{
		Workers:      cfg.SweepWorkers,
		QueueSize:    cfg.SweepQueueSize,
		ScanInterval: cfg.SweepInterval,
		MaxDuration:  cfg.SessionMaxDuration,
		BatchSize:    cfg.SweepBatchSize,
	}, repos.Sessions, svcs.reading, clock, registry, logger)

	return &dependencies{
		infra:      infra,
		services:   svcs,
		handlers:   hdlrs,
		registry:   registry,
		jwtManager: jwt.NewManager(cfg.JWTSecret, cfg.JWTIssuer, 0),
		workerPool: workerPool,
		consumer:   consumer,
	}, nil
}
