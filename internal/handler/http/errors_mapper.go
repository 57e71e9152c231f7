package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/profile-card/internal/app"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/service"
	"github.com/MKhiriev/profile-card/internal/store"
	"github.com/MKhiriev/profile-card/internal/utils"
)

// errorMapping turns a sentinel into a response. When message is empty the
// error text itself is sent; only validation errors do that.
type errorMapping struct {
	target  error
	status  int
	kind    string
	message string
}

// errorMappings is checked in order, the first match wins.
var errorMappings = []errorMapping{
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, KindPayloadTooLarge, app.MsgPayloadTooLarge},

	{ErrInvalidJSON, http.StatusBadRequest, KindValidationError, ""},
	{ErrInvalidUserID, http.StatusBadRequest, KindValidationError, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, KindValidationError, ""},
	{service.ErrInvalidImage, http.StatusBadRequest, KindValidationError, ""},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, KindDuplicateEmail, app.MsgEmailAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, KindInvalidCredentials, app.MsgInvalidEmailPassword},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},
	{service.ErrSessionUserNotFound, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, KindUnauthenticated, app.MsgAuthenticationRequired},

	{store.ErrProfileNotFound, http.StatusNotFound, KindNotFound, app.MsgProfileNotFound},
}

// statusFromError returns the status, kind and client-facing message for err.
// Unknown errors are reported as a generic 500.
func statusFromError(err error) (int, string, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := m.message
			if message == "" {
				message = err.Error()
			}
			return m.status, m.kind, message
		}
	}
	return http.StatusInternalServerError, KindInternalError, app.MsgInternalServerError
}

// writeError logs err with the request logger and writes the error body.
// Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, kind, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, kind, message)
}

// writeErrorKind writes an error body for failures that have no sentinel,
// such as unknown routes.
func writeErrorKind(w http.ResponseWriter, r *http.Request, status int, kind, message string) {
	logger.FromRequest(r).Debug().Str("kind", kind).Int("status", status).Msg(message)
	utils.WriteError(w, status, kind, message)
}
