package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Events   Events
	Kafka    Kafka    `validate:"required"`
	RabbitMQ RabbitMQ
	Redis    Redis

	Orders Orders
	Cache  Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// EventsTopic receives order lifecycle events, KitchenTopic carries item status changes.
	EventsTopic  string `validate:"required"`
	KitchenTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type RabbitMQ struct {
	URL      string `validate:"omitempty,url"`
	Exchange string `validate:"required_with=URL"`
}

type Redis struct {
	// Addr enables the Redis lock for order code allocation. Empty falls back to an in-process lock.
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Events struct {
	Driver         string        `validate:"oneof=kafka rabbitmq none"`
	PublishTimeout time.Duration `validate:"gte=0"`
}

type Orders struct {
	CodeAttempts        int           `validate:"gte=1,lte=10"`
	MergeReasonRequired bool
	LockTTL             time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
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

		Events: Events{
			Driver:         env("EVENTS_DRIVER", "kafka"),
			PublishTimeout: envDuration("EVENTS_PUBLISH_TIMEOUT", 5*time.Second),
		},

		Kafka: Kafka{
			GroupID:      env("KAFKA_GROUP_ID", "restaurant-pos"),
			EventsTopic:  env("KAFKA_EVENTS_TOPIC", "order-events"),
			KitchenTopic: env("KAFKA_KITCHEN_TOPIC", "kitchen-item-status"),
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		RabbitMQ: RabbitMQ{
			URL:      env("RABBITMQ_URL", ""),
			Exchange: env("RABBITMQ_EXCHANGE", "order_events"),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Orders: Orders{
			CodeAttempts:        envInt("ORDER_CODE_ATTEMPTS", 3),
			MergeReasonRequired: envBool("ORDER_MERGE_REASON_REQUIRED", false),
			LockTTL:             envDuration("ORDER_CODE_LOCK_TTL", 5*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CATALOG_CACHE_CAPACITY", 1000),
			TTL:      envDuration("CATALOG_CACHE_TTL", time.Minute),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "restaurant_pos"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Events.Driver == "rabbitmq" && c.RabbitMQ.URL == "" {
		return errors.New("RABBITMQ_URL is required by the rabbitmq events driver")
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
