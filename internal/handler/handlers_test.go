package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.Services. The HTTP handler only
// stores the pointer at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000", MaxBodyBytes: 1 << 20}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000"}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

func TestNewHandlers_RouterServesUnknownPathAs404(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":5000", MaxBodyBytes: 1 << 20}, logger.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
