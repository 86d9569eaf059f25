package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	Timezone      string `env:"TIMEZONE" envDefault:"UTC"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Alert lifecycle Config
	AlertDedupWindow time.Duration `env:"ALERT_DEDUP_WINDOW" envDefault:"5m"`
	ResponseTimeout  time.Duration `env:"RESPONSE_TIMEOUT" envDefault:"2m"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s"`
	SweepBatchSize   int           `env:"SWEEP_BATCH_SIZE" envDefault:"500"`

	// Notification gateway Config
	NotifyGatewayURL    string        `env:"NOTIFY_GATEWAY_URL"`
	NotifyGatewaySecret string        `env:"NOTIFY_GATEWAY_SECRET"`
	NotifyTimeout       time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	FanoutTimeout       time.Duration `env:"FANOUT_TIMEOUT" envDefault:"10s"`
	NotifyMaxRetries    int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	NotifyBaseDelay     time.Duration `env:"NOTIFY_BASE_DELAY" envDefault:"1s"`
	DashboardURL        string        `env:"DASHBOARD_URL" envDefault:"http://localhost:3000/dashboard"`

	// Threat predictor Config
	PredictorURL     string        `env:"PREDICTOR_URL"`
	PredictorTimeout time.Duration `env:"PREDICTOR_TIMEOUT" envDefault:"2s"`

	// Zone index Config
	ZoneRefreshInterval time.Duration `env:"ZONE_REFRESH_INTERVAL" envDefault:"5m"`

	// Tracing Config
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// API Keys for authentication
	APIKeys         []string `env:"API_KEYS"`
	OperatorAPIKeys []string `env:"OPERATOR_API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		StorageDriver:       getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Timezone:            getEnv("TIMEZONE", "UTC"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		AlertDedupWindow:    getEnvAsDuration("ALERT_DEDUP_WINDOW", 5*time.Minute),
		ResponseTimeout:     getEnvAsDuration("RESPONSE_TIMEOUT", 2*time.Minute),
		SweepInterval:       getEnvAsDuration("SWEEP_INTERVAL", 60*time.Second),
		SweepBatchSize:      getEnvAsInt("SWEEP_BATCH_SIZE", 500),
		NotifyGatewayURL:    os.Getenv("NOTIFY_GATEWAY_URL"),
		NotifyGatewaySecret: os.Getenv("NOTIFY_GATEWAY_SECRET"),
		NotifyTimeout:       getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
		FanoutTimeout:       getEnvAsDuration("FANOUT_TIMEOUT", 10*time.Second),
		NotifyMaxRetries:    getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:     getEnvAsDuration("NOTIFY_BASE_DELAY", time.Second),
		DashboardURL:        getEnv("DASHBOARD_URL", "http://localhost:3000/dashboard"),
		PredictorURL:        os.Getenv("PREDICTOR_URL"),
		PredictorTimeout:    getEnvAsDuration("PREDICTOR_TIMEOUT", 2*time.Second),
		ZoneRefreshInterval: getEnvAsDuration("ZONE_REFRESH_INTERVAL", 5*time.Minute),
		OTLPEndpoint:        os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		APIKeys:             getEnvAsList("API_KEYS"),
		OperatorAPIKeys:     getEnvAsList("OPERATOR_API_KEYS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.AlertDedupWindow <= 0 || c.ResponseTimeout <= 0 || c.SweepInterval <= 0 {
		return fmt.Errorf("alert windows and sweep interval must be positive")
	}
	if c.NotifyMaxRetries < 1 {
		c.NotifyMaxRetries = 1
	}
	return nil
}

// Location возвращает часовой пояс, в котором считаются часы суток для оценки риска
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
