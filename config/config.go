package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide configuration. It is built once at startup
// and never mutated afterwards; every component receives it by pointer.
type Config struct {
	// Messenger platform secrets
	AppSecret       string `env:"APP_SECRET,required"`
	VerifyToken     string `env:"VERIFY_TOKEN,required"`
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN,required"`

	// Public base URL of this server, shown on the account linking page
	ServerURL string `env:"SERVER_URL,required"`

	// Server configuration
	Port string `env:"PORT" envDefault:"8080"`

	// Accept webhook posts without an X-Hub-Signature header. Off by
	// default; only meant for local testing against curl or the platform
	// test console.
	AllowUnsignedWebhooks bool `env:"ALLOW_UNSIGNED_WEBHOOKS" envDefault:"false"`
}

// Load parses the configuration from the environment. Any missing required
// variable is a startup failure: the caller must exit without binding a
// listener.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
