package service

import (
	"context"
	"time"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/store"
	"github.com/MKhiriev/profile-card/models"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"

	dbStatusConnected    = "connected"
	dbStatusDisconnected = "disconnected"

	healthPingTimeout = 2 * time.Second
)

type appInfoService struct {
	appVersion  string
	environment string

	healthChecker store.HealthChecker
	now           func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		environment:   cfg.Environment,
		healthChecker: healthChecker,
		now:           time.Now,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetEnvironment(ctx context.Context) string {
	return s.environment
}

// Health pings the database. A failed ping reports the service as degraded
// rather than failing the request.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{
		Success:     true,
		Status:      healthStatusHealthy,
		DBStatus:    dbStatusConnected,
		Timestamp:   s.now().UTC(),
		Environment: s.environment,
	}

	if s.healthChecker == nil {
		return resp
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.healthChecker.Ping(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		resp.Status = healthStatusDegraded
		resp.DBStatus = dbStatusDisconnected
	}

	return resp
}
