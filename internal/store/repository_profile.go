package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" table.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertProfile runs one INSERT ... ON CONFLICT (user_id) DO UPDATE statement,
// so concurrent calls for the same user never produce a second row and never
// fail on the unique constraint. The last committed call wins.
func (p *profileRepository) UpsertProfile(ctx context.Context, userID int64, fields models.ProfileFields) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProfileQuery(ctx, userID, fields)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpsertProfile").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.Profile{}, err
	}

	profile, err := scanProfile(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if p.errorClassificator.Classify(err) == ForeignKeyViolation || errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "profileRepository.UpsertProfile").
				Int64("user_id", userID).
				Msg("profile owner does not exist")
			return models.Profile{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "profileRepository.UpsertProfile").
			Int64("user_id", userID).
			Msg("failed to upsert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// FindProfileByUserID returns the user's full profile including the owner's email.
func (p *profileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfileByUserIDQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.FindProfileByUserID").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.Profile{}, err
	}

	profile, err := scanProfile(p.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).
			Str("func", "profileRepository.FindProfileByUserID").
			Int64("user_id", userID).
			Msg("failed to query profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// FindPublicProfile selects only the shareable columns of a profile.
func (p *profileRepository) FindPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPublicProfileQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.FindPublicProfile").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.PublicProfile{}, err
	}

	var public models.PublicProfile
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&public.FirstName,
		&public.LastName,
		&public.Phone,
		&public.Address,
		&public.Company,
		&public.Position,
		&public.Bio,
		&public.ProfileImage,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PublicProfile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).
			Str("func", "profileRepository.FindPublicProfile").
			Int64("user_id", userID).
			Msg("failed to query public profile")
		return models.PublicProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return public, nil
}

func scanProfile(row *sql.Row) (models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&profile.Phone,
		&profile.Address,
		&profile.Company,
		&profile.Position,
		&profile.Bio,
		&profile.ProfileImage,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	return profile, err
}
