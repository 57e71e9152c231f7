package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationDB connects to the database named by TEST_DATABASE_URI and
// applies migrations. The test is skipped when the variable is unset.
func newIntegrationDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn, MaxOpenConns: 20}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func uniqueEmail() string {
	return fmt.Sprintf("it-%s@example.com", uuid.NewString())
}

func TestIntegration_ConcurrentRegistrationSameEmail(t *testing.T) {
	db := newIntegrationDB(t)
	users := NewUserRepository(db, logger.Nop())
	email := uniqueEmail()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
		others    []error
	)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.CreateUser(context.Background(), email, "hash")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrEmailAlreadyExists):
				dupes++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, dupes)
}

func TestIntegration_ConcurrentUpsertsLeaveOneRow(t *testing.T) {
	db := newIntegrationDB(t)
	users := NewUserRepository(db, logger.Nop())
	profiles := NewProfileRepository(db, logger.Nop())

	user, err := users.CreateUser(context.Background(), uniqueEmail(), "hash")
	require.NoError(t, err)

	const writers = 10
	submitted := make(map[string]models.ProfileFields, writers)
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := range writers {
		fields := models.ProfileFields{
			FirstName: fmt.Sprintf("first-%d", i),
			LastName:  fmt.Sprintf("last-%d", i),
			Company:   fmt.Sprintf("company-%d", i),
		}
		submitted[fields.FirstName] = fields

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := profiles.UpsertProfile(context.Background(), user.UserID, fields)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM profiles WHERE user_id = $1", user.UserID).Scan(&count))
	assert.Equal(t, 1, count)

	stored, err := profiles.FindProfileByUserID(context.Background(), user.UserID)
	require.NoError(t, err)

	want, ok := submitted[stored.FirstName]
	require.True(t, ok, "stored profile must come from one of the submitted calls")
	assert.Equal(t, want, stored.ProfileFields, "stored fields must not mix different calls")
	assert.Equal(t, user.Email, stored.Email)
}

func TestIntegration_UpsertReplacesAbsentFields(t *testing.T) {
	db := newIntegrationDB(t)
	users := NewUserRepository(db, logger.Nop())
	profiles := NewProfileRepository(db, logger.Nop())
	ctx := context.Background()

	user, err := users.CreateUser(ctx, uniqueEmail(), "hash")
	require.NoError(t, err)

	first, err := profiles.UpsertProfile(ctx, user.UserID, models.ProfileFields{FirstName: "Ann", Company: "Acme"})
	require.NoError(t, err)

	second, err := profiles.UpsertProfile(ctx, user.UserID, models.ProfileFields{FirstName: "Ann"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "", second.Company)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	public, err := profiles.FindPublicProfile(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", public.FirstName)
}

func TestIntegration_UpsertForMissingUser(t *testing.T) {
	db := newIntegrationDB(t)
	profiles := NewProfileRepository(db, logger.Nop())

	_, err := profiles.UpsertProfile(context.Background(), 1<<62, models.ProfileFields{FirstName: "x"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
