package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

type SMSConfig struct {
	BaseURL     string
	Email       string
	Password    string
	From        string
	MessageCost decimal.Decimal
}

type TLSConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
	CAFile   string
}

type Config struct {
	GRPCPort      int
	HTTPPort      int
	DB            DatabaseConfig
	Kafka         KafkaConfig
	JWT           JWTConfig
	SMS           SMSConfig
	TLS           TLSConfig
	LogLevel      string
	LogFormat     string
	MigrationsDir string
	// ReminderHour is the local hour of day the due-installment reminder
	// job runs.
	ReminderHour int
	ServiceName  string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "debtmanager"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "debt_manager"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			Issuer:     getEnv("JWT_ISSUER", "debt-manager"),
			Expiration: getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		SMS: SMSConfig{
			BaseURL:     getEnv("SMS_BASE_URL", "https://notify.eskiz.uz/api"),
			Email:       getEnv("SMS_EMAIL", ""),
			Password:    getEnv("SMS_PASSWORD", ""),
			From:        getEnv("SMS_FROM", "4546"),
			MessageCost: getEnvDecimal("SMS_MESSAGE_COST", decimal.NewFromInt(115)),
		},
		TLS: TLSConfig{
			Enabled:  getEnvBool("TLS_ENABLED", false),
			CertFile: getEnv("TLS_CERT_FILE", ""),
			KeyFile:  getEnv("TLS_KEY_FILE", ""),
			CAFile:   getEnv("TLS_CA_FILE", ""),
		},
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://./migrations"),
		ReminderHour:  getEnvInt("REMINDER_HOUR", 9),
		ServiceName:   "debt-manager",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
