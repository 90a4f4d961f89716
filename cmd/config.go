package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"kitchenpos"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"kitchenpos"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	KafkaBrokers      []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaProductTopic string   `envconfig:"KAFKA_PRODUCT_TOPIC" default:"kitchenpos.products"`
	KafkaOrderTopic   string   `envconfig:"KAFKA_ORDER_TOPIC" default:"kitchenpos.eat-in-orders"`

	RedisAddr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	ProfanityCacheTTL time.Duration `envconfig:"PROFANITY_CACHE_TTL" default:"24h"`

	PurgomalumURL     string        `envconfig:"PURGOMALUM_URL" default:"https://www.purgomalum.com"`
	PurgomalumTimeout time.Duration `envconfig:"PURGOMALUM_TIMEOUT" default:"3s"`

	OutboxRelaySchedule string `envconfig:"OUTBOX_RELAY_SCHEDULE" default:"*/5 * * * * *"`
	OutboxBatchSize     int    `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`

	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads the given .env files, when present, and decodes the environment.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSslMode)
}

func (c Config) HTTPAddr() string {
	return "0.0.0.0:" + c.HTTPPort
}

// NewLogger builds the production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	return zapCfg.Build()
}

// EchoLogLevel maps the log level onto echo's gommon logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error", "dpanic", "panic", "fatal":
		return log.ERROR
	default:
		return log.INFO
	}
}
