package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/profile-card/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}

	profileFieldColumns = []string{
		"first_name",
		"last_name",
		"phone",
		"address",
		"company",
		"position",
		"bio",
		"profile_image",
	}
)

func buildCreateUserQuery(ctx context.Context, email, passwordHash string) (string, []any, error) {
	query, args, err := psql.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserQuery(ctx context.Context, where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	return buildFindUserQuery(ctx, sq.Eq{"email": email})
}

func buildFindUserByIDQuery(ctx context.Context, userID int64) (string, []any, error) {
	return buildFindUserQuery(ctx, sq.Eq{"id": userID})
}

// buildUpsertProfileQuery renders a single statement that inserts the profile
// or, when the user already has one, replaces every field of it. The
// data-modifying CTE lets the same statement return the owner's email.
func buildUpsertProfileQuery(ctx context.Context, userID int64, fields models.ProfileFields) (string, []any, error) {
	updates := make([]string, 0, len(profileFieldColumns)+1)
	for _, col := range profileFieldColumns {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	updates = append(updates, "updated_at = NOW()")

	returning := append([]string{"id", "user_id"}, profileFieldColumns...)
	returning = append(returning, "created_at", "updated_at")

	insert, args, err := sq.
		Insert(models.Profile{}.TableName()).
		Columns(append([]string{"user_id"}, profileFieldColumns...)...).
		Values(
			userID,
			fields.FirstName,
			fields.LastName,
			fields.Phone,
			fields.Address,
			fields.Company,
			fields.Position,
			fields.Bio,
			fields.ProfileImage,
		).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(updates, ", ") +
			" RETURNING " + strings.Join(returning, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	selected := make([]string, 0, len(returning)+1)
	selected = append(selected, "p.id", "p.user_id", "u.email")
	for _, col := range profileFieldColumns {
		selected = append(selected, "p."+col)
	}
	selected = append(selected, "p.created_at", "p.updated_at")

	query := "WITH p AS (" + insert + ") SELECT " + strings.Join(selected, ", ") +
		" FROM p JOIN " + models.User{}.TableName() + " u ON u.id = p.user_id"

	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindProfileByUserIDQuery(ctx context.Context, userID int64) (string, []any, error) {
	columns := make([]string, 0, len(profileFieldColumns)+5)
	columns = append(columns, "p.id", "p.user_id", "u.email")
	for _, col := range profileFieldColumns {
		columns = append(columns, "p."+col)
	}
	columns = append(columns, "p.created_at", "p.updated_at")

	query, args, err := psql.
		Select(columns...).
		From(models.Profile{}.TableName() + " p").
		Join(models.User{}.TableName() + " u ON u.id = p.user_id").
		Where(sq.Eq{"p.user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetPublicProfileQuery selects only the publicly shareable columns.
func buildGetPublicProfileQuery(ctx context.Context, userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(profileFieldColumns...).
		From(models.Profile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
