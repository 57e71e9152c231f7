package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/internal/utils"
	"github.com/MKhiriev/profile-card/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL from adapterCfg.HTTPAddress is normalised ("localhost:5000"
// becomes "http://localhost:5000") and every request is bounded by
// adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs credentials to
// POST /api/auth/register and returns the created account.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. On success the token from the response
// body is stored for subsequent authenticated calls.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var session models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&session).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if session.Token == "" {
		return models.LoginResponse{}, ErrMissingToken
	}

	h.SetToken(session.Token)
	h.logger.Debug().Int64("user_id", session.User.UserID).Msg("logged in")
	return session, nil
}

func (h *httpServerAdapter) Verify(ctx context.Context) (models.User, error) {
	var verified models.VerifyResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&verified).
		Get("/api/auth/verify")
	if err != nil {
		return models.User{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return verified.User, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, fields models.ProfileFields) (models.Profile, error) {
	var updated models.UpdateProfileResponse

	resp, err := h.authedRequest(ctx).
		SetBody(fields).
		SetResult(&updated).
		Put("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return updated.Profile, nil
}

func (h *httpServerAdapter) GetProfileQR(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "image/png").
		Get("/api/profile/qr")
	if err != nil {
		return nil, fmt.Errorf("get profile qr request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetPublicProfile implements [ServerAdapter]. The request is sent without
// the bearer token even when one is stored.
func (h *httpServerAdapter) GetPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error) {
	var public models.PublicProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&public).
		Get("/api/profile/public/{userId}")
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("get public profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, err
	}

	return public, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
