package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Processor ProcessorConfig `koanf:"processor"`
	Checkout  CheckoutConfig  `koanf:"checkout"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database"`
	Logger    LoggerConfig    `koanf:"logger"`
	Sweeper   SweeperConfig   `koanf:"sweeper"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type ProcessorConfig struct {
	APIKey          string        `koanf:"api_key" validate:"required"`
	BaseURL         string        `koanf:"base_url" validate:"required"`
	MerchantAccount string        `koanf:"merchant_account" validate:"required"`
	ClientKey       string        `koanf:"client_key" validate:"required"`
	Timeout         time.Duration `koanf:"timeout" validate:"required"`
}

// CheckoutConfig fixes the single-merchant checkout context: one
// currency, one country, a fixed cart amount and the base URL the
// processor redirects the shopper back to.
type CheckoutConfig struct {
	Currency       string `koanf:"currency" validate:"required"`
	AmountMinor    int64  `koanf:"amount_minor" validate:"required"`
	CountryCode    string `koanf:"country_code"`
	Channel        string `koanf:"channel"`
	ReturnURLBase  string `koanf:"return_url_base" validate:"required"`
	ShopperEmail   string `koanf:"shopper_email"`
	BillingCity    string `koanf:"billing_city"`
	BillingStreet  string `koanf:"billing_street"`
	BillingHouse   string `koanf:"billing_house"`
	BillingPostal  string `koanf:"billing_postal"`
	BillingCountry string `koanf:"billing_country"`
}

// StoreConfig selects the reference store backend: "memory" (default)
// or "postgres".
type StoreConfig struct {
	Driver string `koanf:"driver"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SweeperConfig bounds retention of in-memory session references.
type SweeperConfig struct {
	Interval time.Duration `koanf:"interval"`
	TTL      time.Duration `koanf:"ttl"`
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("CHECKOUT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CHECKOUT_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	applyDefaults(mainConfig)

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memory"
	}
	if cfg.Checkout.Channel == "" {
		cfg.Checkout.Channel = "Web"
	}
	if cfg.Sweeper.Interval == 0 {
		cfg.Sweeper.Interval = 10 * time.Minute
	}
	if cfg.Sweeper.TTL == 0 {
		cfg.Sweeper.TTL = 24 * time.Hour
	}
}

// NewLogger builds the process logger from configuration.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(c.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
