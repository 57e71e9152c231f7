package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrDuplicateEmail      = errors.New("email is already registered")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrMissingToken        = errors.New("server returned no token")

	// ErrInvalidProfileURL is returned by ParseProfileURL for text that is
	// not a profile link.
	ErrInvalidProfileURL = errors.New("invalid profile url")
)
