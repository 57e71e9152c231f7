package service

import (
	"context"

	"github.com/MKhiriev/profile-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,ProfileServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// VerifySession parses the token and resolves its owner. A token whose
	// user no longer exists yields ErrSessionUserNotFound.
	VerifySession(ctx context.Context, tokenString string) (models.User, error)
}

type ProfileService interface {
	// CreateOrUpdate replaces every profile field of the user in one atomic
	// step, creating the profile on first use.
	CreateOrUpdate(ctx context.Context, userID int64, fields models.ProfileFields) (models.Profile, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	GetPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error)
}

type QRService interface {
	// ProfileURL returns the public profile link encoded into QR codes.
	ProfileURL(userID int64) string
	// GenerateProfileQR renders ProfileURL(userID) as a PNG image.
	GenerateProfileQR(ctx context.Context, userID int64) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetEnvironment(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
