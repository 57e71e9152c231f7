package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultClientRequestTimeout = 15 * time.Second

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the profile-card server.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout for every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token from a previous login, used by commands that
	// need authentication.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from .env, environment
// variables and flags (-a, -timeout, -token), in that order of increasing priority.
// It returns the remaining positional arguments (the command to run).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(".env"); err != nil {
			return nil, nil, fmt.Errorf("error loading .env: %w", err)
		}
	}

	cfg := &ClientConfig{Adapter: ClientAdapter{
		HTTPAddress:    "http://localhost:5000",
		RequestTimeout: defaultClientRequestTimeout,
	}}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("profile-card-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "profile-card server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.Adapter.Token, "token", cfg.Adapter.Token, "bearer token returned by login")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
