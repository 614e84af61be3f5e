// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID int64) (models.User, error)
}

// EntryService manages the diary entries of one user at a time. Every
// method is scoped to userID; entries of other users read as missing.
type EntryService interface {
	CreateEntry(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error)
	CreateVoiceEntry(ctx context.Context, userID int64, upload models.VoiceUpload) (models.Entry, error)
	ListEntries(ctx context.Context, userID int64, page, limit int) (models.EntryPage, error)
	GetEntry(ctx context.Context, userID int64, id string) (models.Entry, error)
	UpdateEntry(ctx context.Context, userID int64, id string, req models.EntryUpdateRequest) (models.Entry, error)
	DeleteEntry(ctx context.Context, userID int64, id string) (models.ReleaseResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// logging or validating.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService // returns a decorated EntryService applying additional behavior
}
