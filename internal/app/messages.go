// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// profile-card HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of JSON response bodies. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

const (
	// MsgAPIName is reported by GET /api.
	MsgAPIName = "Profile Card API"

	// MsgLoggedOut acknowledges POST /api/auth/logout. Tokens are stateless,
	// the client is expected to discard its copy.
	MsgLoggedOut = "Logged out successfully"

	// MsgProfileUpdated acknowledges PUT /api/profile.
	MsgProfileUpdated = "Profile updated successfully"

	// MsgAuthenticationRequired is sent for every rejected bearer token,
	// whatever the reason.
	MsgAuthenticationRequired = "authentication required"

	// MsgInvalidEmailPassword is sent for an unknown email and for a wrong
	// password alike.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "user with this email already exists"

	// MsgProfileNotFound is returned by the public profile endpoint when the
	// user has not created a profile.
	MsgProfileNotFound = "profile not found"

	// MsgPayloadTooLarge is returned when the request body exceeds the
	// configured limit.
	MsgPayloadTooLarge = "request body is too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
