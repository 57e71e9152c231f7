package store

import (
	"context"

	"github.com/MKhiriev/profile-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account. A taken email yields
	// [ErrEmailAlreadyExists] regardless of how many registrations race.
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] for unknown emails.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] for unknown ids.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ProfileRepository persists one profile per user.
type ProfileRepository interface {
	// UpsertProfile atomically creates the user's profile or replaces all of
	// its fields. It returns [ErrNoUserWasFound] if the user does not exist.
	UpsertProfile(ctx context.Context, userID int64, fields models.ProfileFields) (models.Profile, error)
	// FindProfileByUserID returns [ErrProfileNotFound] when none exists.
	FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error)
	// FindPublicProfile returns only the shareable fields, or [ErrProfileNotFound].
	FindPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error)
}

// ImageStorage keeps uploaded profile images outside the database.
type ImageStorage interface {
	// SaveImage stores data under key and returns the public URL of the object.
	SaveImage(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Enabled reports whether uploads are configured.
	Enabled() bool
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors to [ErrorClassification] values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
