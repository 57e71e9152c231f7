package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/profile-card/internal/validators"
	"github.com/MKhiriev/profile-card/models"
)

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

// NewProfileValidationService rejects inline images longer than
// maxImageBytes.
func NewProfileValidationService(maxImageBytes int64) ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewProfileValidator(maxImageBytes),
	}
}

func (v *ProfileValidationService) CreateOrUpdate(ctx context.Context, userID int64, fields models.ProfileFields) (models.Profile, error) {
	if userID <= 0 {
		return models.Profile{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateOrUpdate(ctx, userID, fields)
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if userID <= 0 {
		return models.Profile{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) GetPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error) {
	if userID <= 0 {
		return models.PublicProfile{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.GetPublicProfile(ctx, userID)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
