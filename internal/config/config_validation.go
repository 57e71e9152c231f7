// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress     = ":5000"
	defaultTokenIssuer     = "profile-card"
	defaultTokenDuration   = 24 * time.Hour
	defaultFrontendURL     = "http://localhost:3000"
	defaultQRCodeSize      = 256
	defaultEnvironment     = "development"
	defaultVersion         = "1.0.0"
	defaultLogLevel        = "debug"
	defaultMaxBodyBytes    = 50 << 20
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = 30 * time.Minute
	defaultImagesRegion    = "us-east-1"
)

// defaultConfig returns the base layer every other source is merged onto.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    bcrypt.DefaultCost,
			FrontendURL:   defaultFrontendURL,
			QRCodeSize:    defaultQRCodeSize,
			Environment:   defaultEnvironment,
			Version:       defaultVersion,
			Log: Log{
				Level:      defaultLogLevel,
				MaxSizeMB:  100,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Server: Server{
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MaxBodyBytes:    defaultMaxBodyBytes,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
			Images: Images{
				Region: defaultImagesRegion,
			},
		},
	}
}

// applyDerived fills settings that depend on other settings once all
// sources are merged.
func (cfg *StructuredConfig) applyDerived() {
	cfg.App.FrontendURL = strings.TrimRight(cfg.App.FrontendURL, "/")

	if cfg.Server.HTTPAddress == "" {
		if cfg.Port != "" {
			cfg.Server.HTTPAddress = ":" + cfg.Port
		} else {
			cfg.Server.HTTPAddress = defaultHTTPAddress
		}
	}

	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{cfg.App.FrontendURL}
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if u, err := url.Parse(cfg.App.FrontendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: frontend URL must be absolute", ErrInvalidAppConfigs)
	}

	if cfg.App.QRCodeSize <= 0 {
		return fmt.Errorf("%w: QR code size must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Images.Enabled() && cfg.Storage.Images.PublicBaseURL == "" {
		return fmt.Errorf("%w: public base URL is required when image bucket is set", ErrInvalidStorageConfigs)
	}

	return nil
}
