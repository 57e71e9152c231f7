package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidImage        = errors.New("invalid profile image")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrSessionUserNotFound = errors.New("user of the session no longer exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrQRGenerationFailed    = errors.New("qr code generation failed")
)
