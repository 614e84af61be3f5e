// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// EntryValidationService rejects calls without an authenticated user and
// short-circuits malformed entry ids to ErrEntryNotFound before they reach
// the database.
type EntryValidationService struct {
	inner EntryService
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{}
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error) {
	if userID <= 0 {
		return models.Entry{}, ErrValidationNoUserID
	}
	return v.inner.CreateEntry(ctx, userID, req)
}

func (v *EntryValidationService) CreateVoiceEntry(ctx context.Context, userID int64, upload models.VoiceUpload) (models.Entry, error) {
	if userID <= 0 {
		return models.Entry{}, ErrValidationNoUserID
	}
	return v.inner.CreateVoiceEntry(ctx, userID, upload)
}

func (v *EntryValidationService) ListEntries(ctx context.Context, userID int64, page, limit int) (models.EntryPage, error) {
	if userID <= 0 {
		return models.EntryPage{}, ErrValidationNoUserID
	}
	return v.inner.ListEntries(ctx, userID, page, limit)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, userID int64, id string) (models.Entry, error) {
	if err := validateEntryRef(userID, id); err != nil {
		return models.Entry{}, err
	}
	return v.inner.GetEntry(ctx, userID, id)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, userID int64, id string, req models.EntryUpdateRequest) (models.Entry, error) {
	if err := validateEntryRef(userID, id); err != nil {
		return models.Entry{}, err
	}
	return v.inner.UpdateEntry(ctx, userID, id, req)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, userID int64, id string) (models.ReleaseResult, error) {
	if err := validateEntryRef(userID, id); err != nil {
		return models.ReleaseResult{}, err
	}
	return v.inner.DeleteEntry(ctx, userID, id)
}

func (v *EntryValidationService) Wrap(wrapped EntryService) EntryService {
	v.inner = wrapped
	return v
}

func validateEntryRef(userID int64, id string) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if !utils.IsValidUUID(id) {
		return ErrEntryNotFound
	}
	return nil
}
