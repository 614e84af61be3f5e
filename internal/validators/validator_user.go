// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/models"
)

const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldPasswordLength = "password_length"
)

// MaxPasswordLength is the longest password bcrypt accepts.
const MaxPasswordLength = 72

// UserValidator checks credential payloads. Without explicit fields it
// checks presence of email and password plus the password length bounds.
type UserValidator struct {
	minPasswordLength int
}

// NewUserValidator returns a Validator for models.User. A minPasswordLength
// below 1 only requires the password to be present.
func NewUserValidator(minPasswordLength int) Validator {
	return &UserValidator{minPasswordLength: minPasswordLength}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if len(user.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
			if len(user.Password) < v.minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return nil
}
