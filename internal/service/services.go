package service

import (
	"fmt"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/crypto"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	QRService      QRService
	AppInfoService AppInfoService
}

// NewServices builds every service on top of storages. Auth and profile
// services are wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger))

	profileService := NewProfileValidationService(cfg.Server.MaxBodyBytes).
		Wrap(NewProfileService(storages.ProfileRepository, storages.ImageStorage, logger))

	return &Services{
		AuthService:    authService,
		ProfileService: profileService,
		QRService:      NewQRService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
