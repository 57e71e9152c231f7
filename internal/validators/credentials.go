package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/profile-card/models"
)

// Field name constants accepted by [CredentialsValidator.Validate].
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password length rules.
	FieldPassword = "password"
)

const (
	maxEmailLength = 254

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 1

	// MaxPasswordLength is the bcrypt input limit in bytes; longer inputs
	// would be silently truncated by the hasher.
	MaxPasswordLength = 72
)

// CredentialsValidator implements [Validator] for registration and login
// payloads.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials or *models.Credentials. Without field
// names both email and password are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(credentials.Email); err != nil {
				return err
			}
		case FieldPassword:
			if len(credentials.Password) < MinPasswordLength {
				return fmt.Errorf("%w: at least %d character required", ErrPasswordTooShort, MinPasswordLength)
			}
			if len(credentials.Password) > MaxPasswordLength {
				return fmt.Errorf("%w: at most %d bytes allowed", ErrPasswordTooLong, MaxPasswordLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only ("a@b.co", not "A <a@b.co>").
func validateEmail(email string) error {
	if email == "" || len(email) > maxEmailLength || strings.TrimSpace(email) != email {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}
