package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	WhatsApp WhatsAppConfig
	Outbound OutboundConfig
	Services ServicesConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `env:"SERVER_PORT" envDefault:"4000"`
	Env  string `env:"GO_ENV" envDefault:"development"`
}

// WhatsAppConfig holds the messaging gateway credentials. All three ids are
// optional; without them the console runs on cached data only.
type WhatsAppConfig struct {
	AccessToken       string        `env:"WHATSAPP_ACCESS_TOKEN"`
	BusinessAccountID string        `env:"WHATSAPP_BUSINESS_ACCOUNT_ID"`
	PhoneNumberID     string        `env:"WHATSAPP_PHONE_NUMBER_ID"`
	APIVersion        string        `env:"WHATSAPP_API_VERSION" envDefault:"v19.0"`
	BaseURL           string        `env:"WHATSAPP_API_BASE_URL" envDefault:"https://graph.facebook.com"`
	Timeout           time.Duration `env:"WHATSAPP_TIMEOUT" envDefault:"10s"`
}

// OutboundConfig sizes the fire-and-forget gateway send pool
type OutboundConfig struct {
	Workers   int `env:"OUTBOUND_WORKERS" envDefault:"4"`
	QueueSize int `env:"OUTBOUND_QUEUE_SIZE" envDefault:"100"`
}

// ServicesConfig holds URLs of collaborating services
type ServicesConfig struct {
	WebAppURI string `env:"WEBAPP_URI" envDefault:"http://localhost:3000"`
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load reads env.local outside production, then parses the environment
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return Parse()
}

// Parse builds a Config from the current process environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Outbound.Workers <= 0 {
		return nil, fmt.Errorf("OUTBOUND_WORKERS must be positive, got %d", cfg.Outbound.Workers)
	}
	if cfg.Outbound.QueueSize <= 0 {
		return nil, fmt.Errorf("OUTBOUND_QUEUE_SIZE must be positive, got %d", cfg.Outbound.QueueSize)
	}
	return cfg, nil
}
