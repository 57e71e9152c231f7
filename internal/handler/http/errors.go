// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrPayloadTooLarge is returned when a request body exceeds the
	// configured limit.
	ErrPayloadTooLarge = errors.New("request body is too large")

	// ErrInvalidUserID is returned when a {userId} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("user id must be a positive integer")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware. It indicates a routing bug, not a client error.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// Error kinds reported in the "error" field of every error body.
const (
	KindUnauthenticated    = "Unauthenticated"
	KindInvalidCredentials = "InvalidCredentials"
	KindDuplicateEmail     = "DuplicateEmail"
	KindNotFound           = "NotFound"
	KindMethodNotAllowed   = "MethodNotAllowed"
	KindValidationError    = "ValidationError"
	KindPayloadTooLarge    = "PayloadTooLarge"
	KindInternalError      = "InternalError"
)
