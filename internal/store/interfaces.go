// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// EntryRepository persists diary entries. Every method except Create is
// scoped to the owner: an entry of another user reads as missing.
type EntryRepository interface {
	Create(ctx context.Context, record models.StorageRecord) (models.StoredEntry, error)
	Get(ctx context.Context, id string, userID int64) (models.StoredEntry, error)
	List(ctx context.Context, userID int64, limit, offset uint64) ([]models.StoredEntry, error)
	Update(ctx context.Context, id string, userID int64, update models.EntryUpdate) (models.StoredEntry, error)
	Delete(ctx context.Context, id string, userID int64) (models.StoredEntry, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
