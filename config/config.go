package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	// Server
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	// Storage
	StoreBackend string `envconfig:"STORE_BACKEND" default:"sqlite"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:"railsheba.db"`
	DBHost       string `envconfig:"DB_HOST" default:"localhost"`
	DBPort       string `envconfig:"DB_PORT" default:"5432"`
	DBUser       string `envconfig:"DB_USER" default:"postgres"`
	DBPassword   string `envconfig:"DB_PASSWORD" default:"railsheba"`
	DBName       string `envconfig:"DB_NAME" default:"railsheba"`

	// Reference data; empty means the embedded catalog
	CatalogPath string `envconfig:"CATALOG_PATH"`

	// Simulated backend latency
	LoginDelay   time.Duration `envconfig:"LOGIN_DELAY" default:"1500ms"`
	SignupDelay  time.Duration `envconfig:"SIGNUP_DELAY" default:"1200ms"`
	NIDDelay     time.Duration `envconfig:"NID_DELAY" default:"2s"`
	PaymentDelay time.Duration `envconfig:"PAYMENT_DELAY" default:"1s"`
	ConfirmDelay time.Duration `envconfig:"CONFIRM_DELAY" default:"1500ms"`
}

// Load loads configuration from environment variables, reading envFile
// first when it exists.
func Load(envFile string) (*Config, error) {
	// The .env file is optional for local development
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	config.normalize()
	return &config, nil
}

// normalize replaces unsupported values with working defaults
func (c *Config) normalize() {
	switch c.StoreBackend {
	case "sqlite":
		if c.SQLitePath == "" {
			slog.Warn("SQLITE_PATH not set, using railsheba.db")
			c.SQLitePath = "railsheba.db"
		}
	case "postgres":
		if c.DBHost == "" || c.DBName == "" {
			slog.Warn("DB_HOST or DB_NAME not set")
		}
	case "memory":
		slog.Warn("memory store selected, nothing will survive a restart")
	default:
		slog.Warn("unknown STORE_BACKEND, using sqlite as fallback", "backend", c.StoreBackend)
		c.StoreBackend = "sqlite"
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		c.GinMode = "release"
	}

	for _, d := range []*time.Duration{&c.LoginDelay, &c.SignupDelay, &c.NIDDelay, &c.PaymentDelay, &c.ConfirmDelay} {
		if *d < 0 {
			*d = 0
		}
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// PostgresDSN builds the lib/pq connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
