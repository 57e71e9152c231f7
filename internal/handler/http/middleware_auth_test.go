package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/profile-card/internal/service"
	"github.com/MKhiriev/profile-card/internal/utils"
	"github.com/MKhiriev/profile-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		verifyErr      error
		callsVerify    bool
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "scheme without token → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token → next called",
			authHeader:     "Bearer valid-token",
			callsVerify:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "expired token → 401",
			authHeader:     "Bearer expired-token",
			verifyErr:      service.ErrTokenIsExpired,
			callsVerify:    true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "user gone → 401",
			authHeader:     "Bearer orphan-token",
			verifyErr:      service.ErrSessionUserNotFound,
			callsVerify:    true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.callsVerify {
				user := testUser
				if tt.verifyErr != nil {
					user = models.User{}
				}
				m.auth.EXPECT().VerifySession(gomock.Any(), gomock.Any()).Return(user, tt.verifyErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

func TestAuth_UserInContext(t *testing.T) {
	h, m := newMockedHandler(t)
	m.auth.EXPECT().VerifySession(gomock.Any(), "tok").Return(testUser, nil)

	var gotID int64
	var gotUser models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotID, ok = utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUser, ok = utils.GetUserFromContext(r.Context())
		require.True(t, ok)
	})

	executeAuth(h, "Bearer tok", next)

	assert.Equal(t, testUser.UserID, gotID)
	assert.Equal(t, testUser.Email, gotUser.Email)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h, m := newMockedHandler(t)
	m.auth.EXPECT().VerifySession(gomock.Any(), "tok").Return(testUser, nil).Times(20)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var wg sync.WaitGroup
	codes := make([]int, 20)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = executeAuth(h, "Bearer tok", next).Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusNoContent, code)
	}
}
