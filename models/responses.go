package models

import "time"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterResponse is returned by POST /api/auth/register.
type RegisterResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// VerifyResponse is returned by GET /api/auth/verify.
type VerifyResponse struct {
	User User `json:"user"`
}

// MessageResponse carries a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileResponse is returned by PUT /api/profile.
type UpdateProfileResponse struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Success     bool      `json:"success"`
	Status      string    `json:"status"`
	DBStatus    string    `json:"dbStatus"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// APIInfoResponse is returned by GET /api and lists the public endpoints.
type APIInfoResponse struct {
	Success   bool                         `json:"success"`
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}
