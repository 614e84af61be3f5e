// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerEntryService struct {
	calls int
}

func (m *mockInnerEntryService) CreateEntry(context.Context, int64, models.EntryRequest) (models.Entry, error) {
	m.calls++
	return models.Entry{ID: testEntryID}, nil
}

func (m *mockInnerEntryService) CreateVoiceEntry(context.Context, int64, models.VoiceUpload) (models.Entry, error) {
	m.calls++
	return models.Entry{ID: testEntryID}, nil
}

func (m *mockInnerEntryService) ListEntries(_ context.Context, _ int64, page, limit int) (models.EntryPage, error) {
	m.calls++
	return models.EntryPage{Page: page, Limit: limit}, nil
}

func (m *mockInnerEntryService) GetEntry(_ context.Context, _ int64, id string) (models.Entry, error) {
	m.calls++
	return models.Entry{ID: id}, nil
}

func (m *mockInnerEntryService) UpdateEntry(_ context.Context, _ int64, id string, _ models.EntryUpdateRequest) (models.Entry, error) {
	m.calls++
	return models.Entry{ID: id}, nil
}

func (m *mockInnerEntryService) DeleteEntry(context.Context, int64, string) (models.ReleaseResult, error) {
	m.calls++
	return models.ReleaseResult{}, nil
}

func newValidated() (EntryService, *mockInnerEntryService) {
	inner := &mockInnerEntryService{}
	return NewEntryValidationService().Wrap(inner), inner
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestEntryValidationService_RequiresUser(t *testing.T) {
	svc, inner := newValidated()
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, 0, models.EntryRequest{})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.CreateVoiceEntry(ctx, -1, models.VoiceUpload{})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.ListEntries(ctx, 0, 1, 20)
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.GetEntry(ctx, 0, testEntryID)
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.UpdateEntry(ctx, 0, testEntryID, models.EntryUpdateRequest{})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.DeleteEntry(ctx, 0, testEntryID)
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	assert.Zero(t, inner.calls)
}

func TestEntryValidationService_MalformedIDReadsAsMissing(t *testing.T) {
	ids := []string{"", "42", "not-a-uuid", testEntryID + "x", "{" + testEntryID + "}"}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			svc, inner := newValidated()
			ctx := context.Background()

			_, err := svc.GetEntry(ctx, testUserID, id)
			assert.ErrorIs(t, err, ErrEntryNotFound)

			_, err = svc.UpdateEntry(ctx, testUserID, id, models.EntryUpdateRequest{Title: strPtr("x")})
			assert.ErrorIs(t, err, ErrEntryNotFound)

			_, err = svc.DeleteEntry(ctx, testUserID, id)
			assert.ErrorIs(t, err, ErrEntryNotFound)

			assert.Zero(t, inner.calls)
		})
	}
}

func TestEntryValidationService_PassesThrough(t *testing.T) {
	svc, inner := newValidated()
	ctx := context.Background()

	entry, err := svc.GetEntry(ctx, testUserID, testEntryID)
	require.NoError(t, err)
	assert.Equal(t, testEntryID, entry.ID)

	page, err := svc.ListEntries(ctx, testUserID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)

	_, err = svc.CreateEntry(ctx, testUserID, models.EntryRequest{})
	require.NoError(t, err)
	_, err = svc.CreateVoiceEntry(ctx, testUserID, models.VoiceUpload{})
	require.NoError(t, err)
	_, err = svc.UpdateEntry(ctx, testUserID, testEntryID, models.EntryUpdateRequest{})
	require.NoError(t, err)
	_, err = svc.DeleteEntry(ctx, testUserID, testEntryID)
	require.NoError(t, err)

	assert.Equal(t, 6, inner.calls)
}
