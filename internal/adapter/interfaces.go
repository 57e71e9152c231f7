// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// profile-card server.
//
// The primary abstraction is [ServerAdapter], implemented over HTTP/REST by
// [NewHTTPServerAdapter]. Error envelopes returned by the server are mapped
// by mapHTTPError onto the sentinels in errors.go so that callers can use
// [errors.Is] (e.g. [ErrDuplicateEmail] for a taken email, [ErrNotFound]
// for a missing public profile).
//
// [ParseProfileURL] turns the text decoded from a profile QR code back into
// a user id that can be passed to GetPublicProfile.
package adapter

import (
	"context"

	"github.com/MKhiriev/profile-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the profile-card API.
// Implementations handle serialisation, the bearer token, and mapping of
// error envelopes to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Verify returns the user the stored token belongs to.
	Verify(ctx context.Context) (models.User, error)

	// Logout acknowledges the logout on the server and forgets the token.
	Logout(ctx context.Context) error

	// GetProfile returns the caller's own profile. A user without a profile
	// gets the zero value.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile replaces the caller's profile fields.
	UpdateProfile(ctx context.Context, fields models.ProfileFields) (models.Profile, error)

	// GetProfileQR returns the PNG QR code for the caller's public profile.
	GetProfileQR(ctx context.Context) ([]byte, error)

	// GetPublicProfile fetches the public projection of userID's profile.
	// No token is required.
	GetPublicProfile(ctx context.Context, userID int64) (models.PublicProfile, error)
}
