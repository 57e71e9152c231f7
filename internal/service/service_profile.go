// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/store"
	"github.com/MKhiriev/profile-card/internal/utils"
	"github.com/MKhiriev/profile-card/models"
)

const dataImagePrefix = "data:image/"

// imageExtensions maps image MIME subtypes to object key extensions.
var imageExtensions = map[string]string{
	"png":     "png",
	"jpeg":    "jpg",
	"jpg":     "jpg",
	"gif":     "gif",
	"webp":    "webp",
	"svg+xml": "svg",
}

type profileService struct {
	profileRepository store.ProfileRepository
	imageStorage      store.ImageStorage
	ids               idGenerator

	logger *logger.Logger
}

// NewProfileService returns a ProfileService backed by profileRepository.
// When imageStorage is enabled, inline data URI images are uploaded there
// and replaced by their public URL before the profile is stored.
func NewProfileService(profileRepository store.ProfileRepository, imageStorage store.ImageStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		imageStorage:      imageStorage,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (p *profileService) CreateOrUpdate(ctx context.Context, userID int64, fields models.ProfileFields) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if p.imageStorage != nil && p.imageStorage.Enabled() && strings.HasPrefix(fields.ProfileImage, dataImagePrefix) {
		imageURL, err := p.offloadImage(ctx, userID, fields.ProfileImage)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("profile image upload failed")
			return models.Profile{}, err
		}
		fields.ProfileImage = imageURL
	}

	profile, err := p.profileRepository.UpsertProfile(ctx, userID, fields)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile upsert failed")
		return models.Profile{}, fmt.Errorf("profile upsert failed: %w", err)
	}

	return profile, nil
}

func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

func (p *profileService) GetPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error) {
	profile, err := p.profileRepository.FindPublicProfile(ctx, userID)
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("public profile lookup failed: %w", err)
	}

	return profile, nil
}

// offloadImage decodes a data URI and stores it under
// profiles/{userID}/{id}.{ext}, returning the public URL of the object.
func (p *profileService) offloadImage(ctx context.Context, userID int64, dataURI string) (string, error) {
	contentType, data, ext, err := decodeDataImage(dataURI)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("profiles/%d/%s.%s", userID, p.ids.Generate(), ext)
	imageURL, err := p.imageStorage.SaveImage(ctx, key, contentType, data)
	if err != nil {
		return "", fmt.Errorf("profile image upload failed: %w", err)
	}

	return imageURL, nil
}

// decodeDataImage splits "data:image/<subtype>;base64,<payload>" into its
// content type, decoded bytes and file extension.
func decodeDataImage(dataURI string) (string, []byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(dataURI, "data:"), ",")
	if !ok {
		return "", nil, "", fmt.Errorf("%w: missing payload", ErrInvalidImage)
	}

	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, "", fmt.Errorf("%w: payload is not base64", ErrInvalidImage)
	}

	ext, ok := imageExtensions[strings.ToLower(strings.TrimPrefix(contentType, "image/"))]
	if !ok {
		return "", nil, "", fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return "", nil, "", fmt.Errorf("%w: empty image", ErrInvalidImage)
	}

	return contentType, data, ext, nil
}
