package http

import (
	"net/http"

	"github.com/MKhiriev/profile-card/internal/app"
	"github.com/MKhiriev/profile-card/internal/utils"
	"github.com/MKhiriev/profile-card/models"
)

var apiEndpoints = map[string]map[string]string{
	"auth": {
		"register": "POST /api/auth/register",
		"login":    "POST /api/auth/login",
		"verify":   "GET /api/auth/verify",
		"logout":   "POST /api/auth/logout",
	},
	"profile": {
		"getProfile":       "GET /api/profile",
		"updateProfile":    "PUT /api/profile",
		"getQRCode":        "GET /api/profile/qr",
		"getPublicProfile": "GET /api/profile/public/{userId}",
	},
}

// health always answers 200; a failing database is reported as "degraded"
// in the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIInfoResponse{
		Success:   true,
		Message:   app.MsgAPIName,
		Version:   h.services.AppInfoService.GetAppVersion(r.Context()),
		Endpoints: apiEndpoints,
	}, http.StatusOK)
}
