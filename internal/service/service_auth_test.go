package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/mock"
	"github.com/MKhiriev/profile-card/internal/store"
	"github.com/MKhiriev/profile-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "profile-card-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, testAppConfig, logger.Nop()).(*authService)
	svc.ids = fixedIDs{id: "jti-1"}

	return svc, repo, hasher
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()
	created := models.User{UserID: 1, Email: "a@x.io", PasswordHash: "$2a$hash"}

	hasher.EXPECT().Hash("pw123").Return("$2a$hash", nil)
	repo.EXPECT().CreateUser(ctx, "a@x.io", "$2a$hash").Return(created, nil)

	got, err := svc.RegisterUser(ctx, models.Credentials{Email: "a@x.io", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), "a@x.io", "$2a$hash").Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@x.io", Password: "pw123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_HashFailure_SkipsStorage(t *testing.T) {
	svc, _, hasher := newTestAuthService(t)
	hashErr := errors.New("boom")

	hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "a@x.io", Password: "pw123"})

	assert.ErrorIs(t, err, hashErr)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 7, Email: "a@x.io", PasswordHash: "$2a$hash"}
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		want    models.User
		wantErr error
	}{
		{
			name: "correct password",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.io").Return(stored, nil)
				hasher.EXPECT().Compare("$2a$hash", "pw123").Return(true, nil)
			},
			want: stored,
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.io").Return(stored, nil)
				hasher.EXPECT().Compare("$2a$hash", "pw123").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "unknown email still spends a comparison",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.io").Return(models.User{}, store.ErrNoUserWasFound)
				hasher.EXPECT().CompareDummy("pw123").Times(1)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "storage failure",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.io").Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher := newTestAuthService(t)
			tt.setup(repo, hasher)

			got, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.io", Password: "pw123"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().CompareDummy(gomock.Any())
	_, unknownErr := svc.Login(context.Background(), models.Credentials{Email: "ghost@x.io", Password: "pw"})

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.io").Return(models.User{UserID: 1, PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare("h", "pw").Return(false, nil)
	_, wrongErr := svc.Login(context.Background(), models.Credentials{Email: "a@x.io", Password: "pw"})

	assert.Equal(t, unknownErr, wrongErr)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	issuedAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, "jti-1", token.ID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_CreateToken_InvalidUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	issuedAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.NotErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_ParseToken_Tampered(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	other := NewAuthService(nil, nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err = other.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)

	_, err = svc.ParseToken(context.Background(), token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

// ─────────────────────────────────────────────
// VerifySession
// ─────────────────────────────────────────────

func TestAuthService_VerifySession(t *testing.T) {
	user := models.User{UserID: 42, Email: "a@x.io"}
	dbErr := errors.New("db down")

	tests := []struct {
		name      string
		repoUser  models.User
		repoErr   error
		wantErr   error
		notMapped bool
	}{
		{name: "user exists", repoUser: user},
		{name: "user deleted", repoErr: store.ErrNoUserWasFound, wantErr: ErrSessionUserNotFound},
		{name: "storage failure", repoErr: dbErr, wantErr: dbErr, notMapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestAuthService(t)
			token, err := svc.CreateToken(context.Background(), user)
			require.NoError(t, err)

			repo.EXPECT().FindUserByID(gomock.Any(), int64(42)).Return(tt.repoUser, tt.repoErr)

			got, err := svc.VerifySession(context.Background(), token.SignedString)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.notMapped {
					assert.NotErrorIs(t, err, ErrSessionUserNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthService_VerifySession_InvalidToken_SkipsLookup(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.VerifySession(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
