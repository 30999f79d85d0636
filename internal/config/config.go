package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env string `validate:"required,oneof=development stage production"`

	Http Http
	Cors CORS

	Kafka    Kafka
	Postgres Postgres

	Sandbox Sandbox
	Client  Client
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Sandbox configures the local backend that serves the quote, order and payment contracts.
type Sandbox struct {
	Storage string          `validate:"required,oneof=memory postgres"`
	TaxRate decimal.Decimal `validate:"-"`
	CODFee  int64           `validate:"gte=0"`

	FreeShippingThreshold int64 `validate:"gte=0"`

	OrderCacheSize int           `validate:"gte=1"`
	OrderCacheTTL  time.Duration `validate:"gt=0"`
}

// Client configures the checkout engine.
type Client struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	DebounceDelay time.Duration `validate:"gt=0"`

	FreeShippingThreshold int64           `validate:"gte=0"`
	DefaultShipping       int64           `validate:"gte=0"`
	TaxRate               decimal.Decimal `validate:"-"`

	QuoteCacheSize int           `validate:"gte=1"`
	QuoteCacheTTL  time.Duration `validate:"gt=0"`

	ReturnURL string `validate:"required,url"`

	SubmitAttempts     int           `validate:"gte=1,lte=10"`
	SubmitInitialDelay time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			Topic:   env("KAFKA_TOPIC", "storefront-orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Sandbox: Sandbox{
			Storage: env("SANDBOX_STORAGE", StorageMemory),
			TaxRate: envDecimal("SANDBOX_TAX_RATE", decimal.RequireFromString("0.24")),
			CODFee:  int64(envInt("SANDBOX_COD_FEE", 200)),

			FreeShippingThreshold: int64(envInt("SANDBOX_FREE_SHIPPING_THRESHOLD", 3500)),

			OrderCacheSize: envInt("SANDBOX_ORDER_CACHE_SIZE", 1000),
			OrderCacheTTL:  envDuration("SANDBOX_ORDER_CACHE_TTL", 5*time.Minute),
		},

		Client: Client{
			BaseURL: env("CHECKOUT_API_URL", "http://localhost:8080"),
			Timeout: envDuration("CHECKOUT_API_TIMEOUT", 10*time.Second),

			DebounceDelay: envDuration("CHECKOUT_QUOTE_DEBOUNCE", 300*time.Millisecond),

			FreeShippingThreshold: int64(envInt("CHECKOUT_FREE_SHIPPING_THRESHOLD", 3500)),
			DefaultShipping:       int64(envInt("CHECKOUT_DEFAULT_SHIPPING", 350)),
			TaxRate:               envDecimal("CHECKOUT_TAX_RATE", decimal.RequireFromString("0.24")),

			QuoteCacheSize: envInt("CHECKOUT_QUOTE_CACHE_SIZE", 64),
			QuoteCacheTTL:  envDuration("CHECKOUT_QUOTE_CACHE_TTL", 10*time.Minute),

			ReturnURL: env("CHECKOUT_RETURN_URL", "http://localhost:3000/checkout/complete"),

			SubmitAttempts:     envInt("CHECKOUT_SUBMIT_ATTEMPTS", 3),
			SubmitInitialDelay: envDuration("CHECKOUT_SUBMIT_RETRY_DELAY", 200*time.Millisecond),
		},
	}
}

// ValidateSandbox validates what cmd/sandbox needs.
func (c Config) ValidateSandbox() error {
	validate := validator.New()
	if err := validate.Var(c.Env, "required,oneof=development stage production"); err != nil {
		return fmt.Errorf("env: %w", err)
	}
	for _, section := range []any{c.Http, c.Cors, c.Sandbox} {
		if err := validate.Struct(section); err != nil {
			return err
		}
	}
	if err := validateRate(c.Sandbox.TaxRate); err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}
	if c.Sandbox.Storage == StoragePostgres {
		if err := validate.Struct(c.Postgres); err != nil {
			return err
		}
	}
	if c.Kafka.Enabled {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
	}
	return nil
}

// ValidateClient validates what the checkout engine needs.
func (c Config) ValidateClient() error {
	validate := validator.New()
	if err := validate.Struct(c.Client); err != nil {
		return err
	}
	if err := validateRate(c.Client.TaxRate); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate %s out of range [0, 1)", rate)
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
