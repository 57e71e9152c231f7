package http

import (
	"net/http"

	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves the session via [service.AuthService.VerifySession], and on
// success stores the user and its ID in the request context with
// [utils.WithUser] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([utils.ErrInvalidAuthorizationHeader]);
//   - the token is expired, tampered or issued for a user that no longer exists.
//
// The reason is only logged; every rejection carries the same body. A
// storage failure while resolving the user is answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.VerifySession(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("session verification failed")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
