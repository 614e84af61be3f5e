// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		minLen  int
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid user",
			obj:  models.User{Email: "ann@example.com", Password: "secret"},
		},
		{
			name: "valid pointer",
			obj:  &models.User{Email: "ann@example.com", Password: "secret"},
		},
		{
			name:    "nil pointer",
			obj:     (*models.User)(nil),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "blank email",
			obj:     models.User{Email: "   ", Password: "secret"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "empty password",
			obj:     models.User{Email: "ann@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name: "72 bytes accepted",
			obj:  models.User{Email: "ann@example.com", Password: strings.Repeat("p", 72)},
		},
		{
			name:    "73 bytes rejected",
			obj:     models.User{Email: "ann@example.com", Password: strings.Repeat("p", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "below minimum",
			minLen:  8,
			obj:     models.User{Email: "ann@example.com", Password: "short"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:   "length not checked when scoped to presence",
			obj:    models.User{Email: "ann@example.com", Password: strings.Repeat("p", 100)},
			fields: []string{FieldEmail, FieldPassword},
		},
		{
			name:    "unknown field",
			obj:     models.User{Email: "ann@example.com", Password: "secret"},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "unsupported type",
			obj:     "ann@example.com",
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserValidator(tt.minLen).Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
