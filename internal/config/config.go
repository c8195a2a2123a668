package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Orders configures cmd/orders.
type Orders struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Store Store `validate:"required"`

	// Checked only for the postgres store.
	Postgres Postgres `validate:"-"`
	Kafka    Kafka    `validate:"-"`
	Outbox   Outbox   `validate:"-"`

	Guard Guard `validate:"required"`
	Redis Redis `validate:"-"`

	Payment  Service `validate:"required"`
	Shipping Service `validate:"required"`
	Saga     Saga    `validate:"required"`

	Cache Cache `validate:"required"`
}

// Payment configures cmd/payment.
type Payment struct {
	Env      string `validate:"required,oneof=development stage production"`
	Http     Http
	Cors     CORS     `validate:"required"`
	Postgres Postgres `validate:"required"`

	DeclineOver float64 `validate:"gt=0"`
}

// Shipping configures cmd/shipping.
type Shipping struct {
	Env      string `validate:"required,oneof=development stage production"`
	Http     Http
	Cors     CORS     `validate:"required"`
	Postgres Postgres `validate:"required"`
}

// Loadgen configures cmd/loadgen.
type Loadgen struct {
	Env      string        `validate:"required,oneof=development stage production"`
	Orders   Service       `validate:"required"`
	Interval time.Duration `validate:"gt=0"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Store struct {
	Driver string `validate:"required,oneof=postgres memory"`

	// MemoryWorkers is the number of change dispatch workers of the memory store.
	MemoryWorkers int `validate:"gte=1"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`
	Workers int      `validate:"gte=1"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Outbox struct {
	PollInterval time.Duration `validate:"gt=0"`
	BatchSize    int           `validate:"gte=1"`
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

type Guard struct {
	Driver string        `validate:"required,oneof=redis memory"`
	TTL    time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

// Service is a downstream HTTP service.
type Service struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Saga struct {
	PaymentTimeout  time.Duration `validate:"gt=0"`
	ShippingTimeout time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func NewOrders() Orders {
	return Orders{
		Env:  env("ENV", "development"),
		Http: newHttp("8080"),

		Cors: newCORS(),

		Store: Store{
			Driver:        env("STORE_DRIVER", "postgres"),
			MemoryWorkers: envInt("MEMORY_WORKERS", 8),
		},

		Postgres: newPostgres("orders"),

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-saga"),
			Topic:   env("KAFKA_TOPIC", "order-changes"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Workers: envInt("KAFKA_WORKERS", 4),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Outbox: Outbox{
			PollInterval: envDuration("OUTBOX_POLL_INTERVAL", 200*time.Millisecond),
			BatchSize:    envInt("OUTBOX_BATCH_SIZE", 100),
		},

		Guard: Guard{
			Driver: env("GUARD_DRIVER", "redis"),
			TTL:    envDuration("GUARD_TTL", 24*time.Hour),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Payment: Service{
			URL:     env("PAYMENT_URL", "http://localhost:8081"),
			Timeout: envDuration("PAYMENT_TIMEOUT", 5*time.Second),
		},

		Shipping: Service{
			URL:     env("SHIPPING_URL", "http://localhost:8082"),
			Timeout: envDuration("SHIPPING_TIMEOUT", 5*time.Second),
		},

		Saga: Saga{
			PaymentTimeout:  envDuration("SAGA_PAYMENT_TIMEOUT", 10*time.Second),
			ShippingTimeout: envDuration("SAGA_SHIPPING_TIMEOUT", 10*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func NewPayment() Payment {
	return Payment{
		Env:         env("ENV", "development"),
		Http:        newHttp("8081"),
		Cors:        newCORS(),
		Postgres:    newPostgres("payment"),
		DeclineOver: envFloat("PAYMENT_DECLINE_OVER", 105),
	}
}

func NewShipping() Shipping {
	return Shipping{
		Env:      env("ENV", "development"),
		Http:     newHttp("8082"),
		Cors:     newCORS(),
		Postgres: newPostgres("shipping"),
	}
}

func NewLoadgen() Loadgen {
	return Loadgen{
		Env: env("ENV", "development"),
		Orders: Service{
			URL:     env("ORDERS_URL", "http://localhost:8080"),
			Timeout: envDuration("ORDERS_TIMEOUT", 5*time.Second),
		},
		Interval: envDuration("LOADGEN_INTERVAL", 2*time.Second),
	}
}

func newHttp(port string) Http {
	return Http{
		Host: env("HOST", "localhost"),
		Port: env("PORT", port),
	}
}

func newCORS() CORS {
	return CORS{
		AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func newPostgres(db string) Postgres {
	return Postgres{
		Port:     envInt("POSTGRES_PORT", 5432),
		Host:     env("POSTGRES_HOST", "localhost"),
		DBName:   env("POSTGRES_DB", db),
		User:     env("POSTGRES_USER", ""),
		Password: env("POSTGRES_PASSWORD", ""),

		SSLMode: env("POSTGRES_SSL_MODE", "disable"),

		MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
	}
}

func (c Orders) Validate() error {
	sections := []any{c}
	if c.Store.Driver == "postgres" {
		sections = append(sections, c.Postgres, c.Kafka, c.Outbox)
	}
	if c.Guard.Driver == "redis" {
		sections = append(sections, c.Redis)
	}

	for _, s := range sections {
		if err := validate(s); err != nil {
			return err
		}
	}
	return nil
}

func (c Payment) Validate() error {
	return validate(c)
}

func (c Shipping) Validate() error {
	return validate(c)
}

func (c Loadgen) Validate() error {
	return validate(c)
}

func validate(c any) error {
	return validator.New().Struct(c)
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

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
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
