package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
)

// Storages groups all server-side storage components so they can be passed
// to the service layer as one value.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	ImageStorage      ImageStorage
	HealthChecker     HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and constructs
// every repository. Image storage is optional and configured from
// cfg.Images.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image storage error: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		ImageStorage:      images,
		HealthChecker:     db,
		db:                db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
