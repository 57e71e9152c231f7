// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/profile-card/models"
)

// Field name constants accepted by [ProfileValidator.Validate].
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldCompany      = "company"
	FieldPosition     = "position"
	FieldBio          = "bio"
	FieldProfileImage = "profileImage"
)

// maxFieldLength caps every text field, in characters.
var maxFieldLength = map[string]int{
	FieldFirstName: 100,
	FieldLastName:  100,
	FieldPhone:     50,
	FieldAddress:   500,
	FieldCompany:   200,
	FieldPosition:  200,
	FieldBio:       2000,
}

// dataImagePrefix starts every accepted inline image.
const dataImagePrefix = "data:image/"

// ProfileValidator implements [Validator] for profile fields. Empty fields
// are always valid.
type ProfileValidator struct {
	maxImageBytes int64
}

// NewProfileValidator returns a validator that rejects inline images larger
// than maxImageBytes. A non-positive value disables the size check.
func NewProfileValidator(maxImageBytes int64) Validator {
	return &ProfileValidator{maxImageBytes: maxImageBytes}
}

// Validate accepts models.ProfileFields or *models.ProfileFields.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileFields:
		return v.validateProfileFields(ctx, value, fields...)
	case *models.ProfileFields:
		return v.validateProfileFields(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateProfileFields(ctx context.Context, p models.ProfileFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldFirstName, FieldLastName, FieldPhone, FieldAddress,
			FieldCompany, FieldPosition, FieldBio, FieldProfileImage,
		}
	}

	values := map[string]string{
		FieldFirstName: p.FirstName,
		FieldLastName:  p.LastName,
		FieldPhone:     p.Phone,
		FieldAddress:   p.Address,
		FieldCompany:   p.Company,
		FieldPosition:  p.Position,
		FieldBio:       p.Bio,
	}

	for _, f := range fields {
		if f == FieldProfileImage {
			if err := v.validateProfileImage(p.ProfileImage); err != nil {
				return err
			}
			continue
		}

		limit, ok := maxFieldLength[f]
		if !ok {
			return ErrUnknownField
		}
		if utf8.RuneCountInString(values[f]) > limit {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, f, limit)
		}
	}

	return nil
}

func (v *ProfileValidator) validateProfileImage(image string) error {
	if image == "" {
		return nil
	}

	if strings.HasPrefix(image, dataImagePrefix) {
		meta, _, ok := strings.Cut(image, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return ErrInvalidProfileImage
		}
		if v.maxImageBytes > 0 && int64(len(image)) > v.maxImageBytes {
			return ErrProfileImageTooLarge
		}
		return nil
	}

	u, err := url.Parse(image)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidProfileImage
	}
	if len(image) > 2048 {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, FieldProfileImage, 2048)
	}

	return nil
}
