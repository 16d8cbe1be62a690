package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress            string        // Адрес и порт запуска сервиса
	DatabaseURI           string        // URI подключения к БД
	CatalogServiceAddress string        // Адрес сервиса каталога книг
	JWTSecret             string        // Секретный ключ для проверки JWT
	JWTIssuer             string        // Ожидаемый издатель токенов, пусто - не проверять
	LogLevel              string        // Уровень логирования
	ShutdownTimeout       time.Duration // Время на graceful shutdown

	// Тарификация
	CommissionRate  decimal.Decimal        // Доля платформы с каждого платежа
	PaymentProvider domain.PaymentProvider // Провайдер для новых платежей

	// Redis, пустой адрес отключает защиту от повторной записи пакетов
	RedisAddress         string
	ChargeIdempotencyTTL time.Duration

	// RabbitMQ, пустой URL отключает публикацию событий
	RabbitMQURL      string
	RabbitMQExchange string

	// Kafka, пустой список брокеров отключает прием статусов платежей
	KafkaBrokers      []string
	KafkaPaymentTopic string
	KafkaGroupID      string

	// Очистка зависших сессий
	SweepWorkers       int
	SweepQueueSize     int
	SweepBatchSize     int
	SweepInterval      time.Duration
	SessionMaxDuration time.Duration
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:], os.LookupEnv)
}

// LoadFrom загружает конфигурацию из переданных аргументов и источника env.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFrom(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		LogLevel:             "info",
		ShutdownTimeout:      10 * time.Second,
		CommissionRate:       decimal.RequireFromString("0.30"),
		PaymentProvider:      domain.PaymentProviderStripe,
		ChargeIdempotencyTTL: 24 * time.Hour,
		RabbitMQExchange:     "reading.events",
		KafkaPaymentTopic:    "payment-status",
		KafkaGroupID:         "reading-billing",
		SweepWorkers:         3,
		SweepQueueSize:       100,
		SweepBatchSize:       100,
		SweepInterval:        time.Minute,
		SessionMaxDuration:   12 * time.Hour,
	}

	// Определяем флаги
	fs := flag.NewFlagSet("readingbilling", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.CatalogServiceAddress, "c", "", "catalog service address")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	env := envReader{lookup: lookupEnv}

	// Переменные окружения имеют приоритет над флагами
	env.str("RUN_ADDRESS", &cfg.RunAddress)
	env.str("DATABASE_URI", &cfg.DatabaseURI)
	env.str("CATALOG_SERVICE_ADDRESS", &cfg.CatalogServiceAddress)
	env.str("LOG_LEVEL", &cfg.LogLevel)
	env.duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)

	// JWT секрет (только из env, не из флагов для безопасности)
	cfg.JWTSecret = "default-secret-key-change-in-production"
	env.str("JWT_SECRET", &cfg.JWTSecret)
	env.str("JWT_ISSUER", &cfg.JWTIssuer)

	env.decimal("PLATFORM_COMMISSION_RATE", &cfg.CommissionRate)
	if raw, ok := lookupEnv("PAYMENT_PROVIDER"); ok {
		provider, err := domain.ParsePaymentProvider(strings.ToUpper(raw))
		if err != nil {
			env.errs = append(env.errs, fmt.Errorf("PAYMENT_PROVIDER: %w", err))
		} else {
			cfg.PaymentProvider = provider
		}
	}

	env.str("REDIS_ADDRESS", &cfg.RedisAddress)
	env.duration("CHARGE_IDEMPOTENCY_TTL", &cfg.ChargeIdempotencyTTL)

	env.str("RABBITMQ_URL", &cfg.RabbitMQURL)
	env.str("RABBITMQ_EXCHANGE", &cfg.RabbitMQExchange)

	env.list("KAFKA_BROKERS", &cfg.KafkaBrokers)
	env.str("KAFKA_PAYMENT_TOPIC", &cfg.KafkaPaymentTopic)
	env.str("KAFKA_GROUP_ID", &cfg.KafkaGroupID)

	// Worker Pool конфигурация из env
	env.positiveInt("SWEEP_WORKERS", &cfg.SweepWorkers)
	env.positiveInt("SWEEP_QUEUE_SIZE", &cfg.SweepQueueSize)
	env.positiveInt("SWEEP_BATCH_SIZE", &cfg.SweepBatchSize)
	env.duration("SWEEP_INTERVAL", &cfg.SweepInterval)
	env.duration("SESSION_MAX_DURATION", &cfg.SessionMaxDuration)

	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	// Валидация обязательных параметров
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if c.CatalogServiceAddress == "" {
		return fmt.Errorf("catalog service address is required (use -c flag or CATALOG_SERVICE_ADDRESS env)")
	}

	if c.CommissionRate.IsNegative() || c.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("platform commission rate must be within [0, 1], got %s", c.CommissionRate)
	}

	return nil
}

// envReader читает переменные окружения и копит ошибки разбора
type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		*dst = v
	}
}

func (e *envReader) list(key string, dst *[]string) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}

	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*dst = items
}

func (e *envReader) positiveInt(key string, dst *int) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		e.errs = append(e.errs, fmt.Errorf("%s: expected positive integer, got %q", key, v))
		return
	}
	*dst = n
}

func (e *envReader) duration(key string, dst *time.Duration) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.errs = append(e.errs, fmt.Errorf("%s: expected positive duration, got %q", key, v))
		return
	}
	*dst = d
}

func (e *envReader) decimal(key string, dst *decimal.Decimal) {
	v, ok := e.lookup(key)
	if !ok {
		return
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: expected decimal, got %q", key, v))
		return
	}
	*dst = d
}
