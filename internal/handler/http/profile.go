package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/profile-card/internal/app"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/store"
	"github.com/MKhiriev/profile-card/internal/utils"
	"github.com/MKhiriev/profile-card/models"
	"github.com/go-chi/chi/v5"
)

// getProfile answers 200 {} when the user has not created a profile yet.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var fields models.ProfileFields
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.CreateOrUpdate(ctx, userID, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", userID).Msg("profile saved")

	utils.WriteJSON(w, models.UpdateProfileResponse{
		Message: app.MsgProfileUpdated,
		Profile: profile,
	}, http.StatusOK)
}

func (h *Handler) getProfileQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	png, err := h.services.QRService.GenerateProfileQR(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getPublicProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, r, ErrInvalidUserID)
		return
	}

	profile, err := h.services.ProfileService.GetPublicProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
