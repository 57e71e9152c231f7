package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/profile-card/internal/adapter"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/mock"
	"github.com/MKhiriev/profile-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	var out bytes.Buffer
	return NewApp(m, &out, logger.Nop()), m, &out
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"delete"}, wantErr: ErrUnknownCommand},
		{name: "register without password", args: []string{"register", "a@x.io"}, wantErr: ErrWrongArguments},
		{name: "verify with extra args", args: []string{"verify", "x"}, wantErr: ErrWrongArguments},
		{name: "public with non-numeric id", args: []string{"public", "abc"}, wantErr: ErrWrongArguments},
		{name: "public with zero id", args: []string{"public", "0"}, wantErr: ErrWrongArguments},
		{name: "scan of unrelated text", args: []string{"scan", "https://example.com/"}, wantErr: adapter.ErrInvalidProfileURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no adapter expectations: nothing may reach the server
			app, _, out := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_Register(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Register(gomock.Any(), models.Credentials{Email: "alice@x.com", Password: "pw123"}).
		Return(models.RegisterResponse{ID: 1, Email: "alice@x.com"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "alice@x.com", "pw123"}))

	var got models.RegisterResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
}

func TestRun_LoginPrintsToken(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Login(gomock.Any(), models.Credentials{Email: "alice@x.com", Password: "pw123"}).
		Return(models.LoginResponse{Token: "T", User: models.User{UserID: 1, Email: "alice@x.com"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "alice@x.com", "pw123"}))

	assert.Contains(t, out.String(), `"token": "T"`)
}

func TestRun_AdapterErrorIsWrapped(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Verify(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"verify"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), "verify")
	assert.Empty(t, out.String())
}

func TestRun_Profile(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().GetProfile(gomock.Any()).
		Return(models.Profile{UserID: 1, Email: "alice@x.com", ProfileFields: models.ProfileFields{FirstName: "A"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"profile"}))

	assert.Contains(t, out.String(), `"firstName": "A"`)
}

func TestRun_QRSavesFile(t *testing.T) {
	app, m, _ := newTestApp(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	m.EXPECT().GetProfileQR(gomock.Any()).Return(png, nil)
	path := filepath.Join(t.TempDir(), "card.png")

	require.NoError(t, app.Run(context.Background(), []string{"qr", path}))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, png, saved)
}

func TestRun_Public(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().GetPublicProfile(gomock.Any(), int64(7)).Return(models.PublicProfile{FirstName: "A"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"public", "7"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "A", got["firstName"])
	assert.NotContains(t, got, "email")
}

func TestRun_ScanResolvesProfileLink(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().GetPublicProfile(gomock.Any(), int64(42)).Return(models.PublicProfile{Company: "Acme"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"scan", "http://localhost:3000/profile/42"}))

	assert.Contains(t, out.String(), `"company": "Acme"`)
}

func TestRun_ScanNotFound(t *testing.T) {
	app, m, _ := newTestApp(t)
	notFound := fmt.Errorf("%w: profile not found", adapter.ErrNotFound)
	m.EXPECT().GetPublicProfile(gomock.Any(), int64(5)).Return(models.PublicProfile{}, notFound)

	err := app.Run(context.Background(), []string{"scan", "http://localhost:3000/profile/5/"})

	require.ErrorIs(t, err, adapter.ErrNotFound)
}
