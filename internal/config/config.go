package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName    string `env:"SERVICE_NAME"`
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`
	OrderSvcAddr   string `env:"ORDER_SERVICE_ADDR" envDefault:":8082"`
	PaymentSvcAddr string `env:"PAYMENT_GATEWAY_ADDR" envDefault:":8083"`
	GRPCHealthAddr string `env:"GRPC_HEALTH_ADDR"`

	OrderAPI   Upstream `envPrefix:"ORDER_API_"`
	PaymentAPI Upstream `envPrefix:"PAYMENT_API_"`
	Store      Store    `envPrefix:"ORDER_STORE_"`
	Gateway    Gateway  `envPrefix:"GATEWAY_"`
}

// Upstream describes one outbound HTTP API.
type Upstream struct {
	BaseURL string        `env:"BASE_URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Store struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite | postgres | upstream
	DSN    string `env:"DSN"`
}

type Gateway struct {
	ProcessDelay time.Duration `env:"PROCESS_DELAY" envDefault:"100ms"`
	RefundDelay  time.Duration `env:"REFUND_DELAY" envDefault:"50ms"`
	DeclineAbove string        `env:"DECLINE_ABOVE" envDefault:"10000"`
}

// IsProduction reports whether gin should run in release mode.
func (c Config) IsProduction() bool { return c.Environment == "production" }

// UserAgent is the product token sent on every outbound call.
func (c Config) UserAgent() string { return c.ServiceName + "/1.0" }

// Load reads an optional .env file and then the process environment.
// serviceName is used when SERVICE_NAME is not set.
func Load(serviceName string) (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}
	if cfg.OrderAPI.BaseURL == "" {
		cfg.OrderAPI.BaseURL = "https://api.example.com"
	}
	if cfg.PaymentAPI.BaseURL == "" {
		cfg.PaymentAPI.BaseURL = "http://localhost" + cfg.PaymentSvcAddr
	}
	if cfg.Store.DSN == "" && cfg.Store.Driver == "sqlite" {
		cfg.Store.DSN = "orders.db"
	}

	log.Printf("[config] SERVICE_NAME=%s ENVIRONMENT=%s", cfg.ServiceName, cfg.Environment)
	log.Printf("[config] ORDER_API_BASE_URL=%s timeout=%s", cfg.OrderAPI.BaseURL, cfg.OrderAPI.Timeout)
	log.Printf("[config] PAYMENT_API_BASE_URL=%s timeout=%s", cfg.PaymentAPI.BaseURL, cfg.PaymentAPI.Timeout)
	log.Printf("[config] ORDER_STORE_DRIVER=%s", cfg.Store.Driver)
	return cfg, nil
}
