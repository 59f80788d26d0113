package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config - настройки всех сервисов из переменных окружения
type Config struct {
	Port     int  `envconfig:"AWARDS_PORT" default:"8080"`
	GRPCPort int  `envconfig:"AWARDS_GRPC_PORT" default:"9090"`
	LogJSON  bool `envconfig:"AWARDS_LOG_JSON" default:"false"`

	// MongoDB - награды
	Mongo         string `envconfig:"AWARDS_MONGO"`
	MongoDatabase string `envconfig:"AWARDS_MONGO_DB" default:"awardsDB"`

	// PostgreSQL - связи и выданные уровни
	DBHost     string `envconfig:"AWARDS_DB"`
	DBPort     int    `envconfig:"AWARDS_DB_PORT" default:"5432"`
	DBUser     string `envconfig:"AWARDS_DB_USER"`
	DBPassword string `envconfig:"AWARDS_DB_PASSWORD"`
	DBBase     string `envconfig:"AWARDS_DB_BASE" default:"awards"`

	// Redis - кэш проверок, пустой адрес - без кэша
	CacheURL  string        `envconfig:"AWARDS_CACHE_URL"`
	CacheUser string        `envconfig:"AWARDS_CACHE_USER"`
	CachePwd  string        `envconfig:"AWARDS_CACHE_PWD"`
	CacheTTL  time.Duration `envconfig:"AWARDS_CACHE_TTL" default:"5m"`

	// Kafka - загрузка журналов
	KafkaBrokers  []string `envconfig:"AWARDS_KAFKA_BROKERS"`
	KafkaTopic    string   `envconfig:"AWARDS_KAFKA_TOPIC" default:"logbooks"`
	KafkaGroup    string   `envconfig:"AWARDS_KAFKA_GROUP" default:"awards-import"`
	ImportWorkers int      `envconfig:"AWARDS_IMPORT_WORKERS" default:"3"`

	// RabbitMQ - заявки на получение уровня
	RabbitURL    string `envconfig:"AWARDS_RABBIT_URL"`
	ClaimQueue   string `envconfig:"AWARDS_CLAIM_QUEUE" default:"claims"`
	ConfirmQueue string `envconfig:"AWARDS_CONFIRM_QUEUE" default:"claim_confirms"`
	ClaimWorkers int    `envconfig:"AWARDS_CLAIM_WORKERS" default:"3"`

	// справочники
	CTYPath      string `envconfig:"AWARDS_CTY_PATH"`
	BandPlanPath string `envconfig:"AWARDS_BANDPLAN_PATH"`

	OTELEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load читает .env (если есть), затем окружение. Окружение имеет приоритет
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be 1-65535, got %d", ErrInvalidConfig, c.Port)
	}
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("%w: grpc port must be 1-65535, got %d", ErrInvalidConfig, c.GRPCPort)
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		return fmt.Errorf("%w: db port must be 1-65535, got %d", ErrInvalidConfig, c.DBPort)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: cache ttl must be positive, got %s", ErrInvalidConfig, c.CacheTTL)
	}
	if c.ImportWorkers < 1 {
		return fmt.Errorf("%w: import workers must be >= 1, got %d", ErrInvalidConfig, c.ImportWorkers)
	}
	if c.ClaimWorkers < 1 {
		return fmt.Errorf("%w: claim workers must be >= 1, got %d", ErrInvalidConfig, c.ClaimWorkers)
	}
	return nil
}

// PostgresDSN - строка подключения к PostgreSQL
func (c *Config) PostgresDSN() (string, error) {
	if c.DBHost == "" {
		return "", fmt.Errorf("env AWARDS_DB is not set")
	}
	if c.DBUser == "" {
		return "", fmt.Errorf("env AWARDS_DB_USER is not set")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   "/" + c.DBBase,
	}
	return u.String(), nil
}

// Logger - zap: development по умолчанию, production при AWARDS_LOG_JSON
func (c *Config) Logger() (*zap.Logger, error) {
	if c.LogJSON {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
