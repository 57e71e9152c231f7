package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("email must be a valid address")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")

	ErrFieldTooLong         = errors.New("field is too long")
	ErrInvalidProfileImage  = errors.New("profile image must be an http(s) URL or a base64 image data URI")
	ErrProfileImageTooLarge = errors.New("profile image is too large")
)
