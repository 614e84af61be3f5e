// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/normalizer"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// Pagination bounds for ListEntries.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50

	maxPage = math.MaxInt32
)

type entryService struct {
	entryRepository store.EntryRepository

	blobStore     blob.Store
	releaser      blob.Releaser
	tempDir       string
	maxUploadSize int64

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewEntryService constructs an EntryService. blobs may be nil, in which
// case voice uploads are rejected and no local recordings are released.
func NewEntryService(entryRepository store.EntryRepository, blobs *blob.Stores, cfg *config.StructuredConfig, logger *logger.Logger) EntryService {
	s := &entryService{
		entryRepository: entryRepository,
		tempDir:         cfg.Storage.Files.TempDir,
		maxUploadSize:   cfg.Server.MaxUploadSize,
		newID:           utils.NewUUIDGenerator().Generate,
		now:             time.Now,
		logger:          logger,
	}
	if blobs != nil {
		s.blobStore = blobs.Store
		s.releaser = blobs.Releaser
	}

	return s
}

// CreateEntry normalizes req and stores it as a new entry owned by userID.
func (s *entryService) CreateEntry(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error) {
	record, err := normalizer.ForStorage(req)
	if err != nil {
		return models.Entry{}, err
	}

	return s.insert(ctx, userID, record)
}

// CreateVoiceEntry stores an uploaded recording and creates a voice entry
// referencing it.
//
// The upload is spooled to a temp file first, which is released whatever
// the outcome. The entry row is only written after the blob store accepted
// the recording.
func (s *entryService) CreateVoiceEntry(ctx context.Context, userID int64, upload models.VoiceUpload) (models.Entry, error) {
	log := logger.FromContext(ctx)

	duration, err := normalizer.ParseDuration(upload.Duration)
	if err != nil {
		return models.Entry{}, err
	}
	if upload.Audio == nil {
		return models.Entry{}, blob.ErrMissingFile
	}

	obj := blob.Object{Filename: upload.Filename, ContentType: upload.ContentType, Size: upload.Size}
	if err = blob.CheckAudio(obj, s.maxUploadSize); err != nil {
		return models.Entry{}, err
	}
	if s.blobStore == nil {
		return models.Entry{}, ErrBlobStoreNotConfigured
	}

	tmp, err := blob.Spool(upload.Audio, s.tempDir, "voice-*")
	if err != nil {
		log.Err(err).Str("func", "entryService.CreateVoiceEntry").Msg("failed to spool upload")
		return models.Entry{}, err
	}
	defer func() {
		if releaseErr := tmp.Release(); releaseErr != nil {
			log.Warn().Err(releaseErr).Str("temp_file", tmp.Name()).Msg("failed to release temp file")
		}
	}()

	obj.Size = tmp.Size()
	if err = blob.CheckAudio(obj, s.maxUploadSize); err != nil {
		return models.Entry{}, err
	}

	audioURL, err := s.blobStore.Upload(ctx, tmp, obj)
	if err != nil {
		log.Err(err).Str("func", "entryService.CreateVoiceEntry").Int64("user_id", userID).Msg("blob upload failed")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBlobUpload, err)
	}

	record, err := normalizer.ForUploadedVoice(upload.Title, audioURL, duration)
	if err != nil {
		s.discard(ctx, audioURL, "entry rejected")
		return models.Entry{}, err
	}

	entry, err := s.insert(ctx, userID, record)
	if err != nil {
		s.discard(ctx, audioURL, "entry not stored")
		return models.Entry{}, err
	}

	return entry, nil
}

// ListEntries returns one page of the user's entries, newest first.
func (s *entryService) ListEntries(ctx context.Context, userID int64, page, limit int) (models.EntryPage, error) {
	page, limit = NormalizePagination(page, limit)
	offset := uint64(page-1) * uint64(limit)

	rows, err := s.entryRepository.List(ctx, userID, uint64(limit), offset)
	if err != nil {
		return models.EntryPage{}, fmt.Errorf("error listing entries: %w", err)
	}

	return models.EntryPage{
		Page:    page,
		Limit:   limit,
		Entries: normalizer.ForResponseList(rows),
	}, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID int64, id string) (models.Entry, error) {
	row, err := s.entryRepository.Get(ctx, id, userID)
	if err != nil {
		return models.Entry{}, translateStoreError(err)
	}

	return normalizer.ForResponse(row), nil
}

// UpdateEntry applies the supplied subset of title, content, media urls and
// audio url. Type, owner and creation time never change. A recording
// replaced by a new audio url is discarded once the update is stored.
func (s *entryService) UpdateEntry(ctx context.Context, userID int64, id string, req models.EntryUpdateRequest) (models.Entry, error) {
	update, err := normalizer.ForUpdate(req)
	if err != nil {
		return models.Entry{}, err
	}

	var previous string
	if update.AudioURL != nil {
		current, getErr := s.entryRepository.Get(ctx, id, userID)
		if getErr != nil {
			return models.Entry{}, translateStoreError(getErr)
		}
		previous = normalizer.AudioReference(current)
	}

	row, err := s.entryRepository.Update(ctx, id, userID, update)
	if err != nil {
		return models.Entry{}, translateStoreError(err)
	}

	if previous != "" && previous != normalizer.AudioReference(row) {
		s.discard(ctx, previous, "audio replaced")
	}

	return normalizer.ForResponse(row), nil
}

// DeleteEntry removes the entry and then releases the local recording it
// referenced, if any. A failed release is logged and reported in the result
// but never fails the deletion.
func (s *entryService) DeleteEntry(ctx context.Context, userID int64, id string) (models.ReleaseResult, error) {
	removed, err := s.entryRepository.Delete(ctx, id, userID)
	if err != nil {
		return models.ReleaseResult{}, translateStoreError(err)
	}

	return s.release(ctx, normalizer.AudioReference(removed)), nil
}

func (s *entryService) insert(ctx context.Context, userID int64, record models.StorageRecord) (models.Entry, error) {
	record.ID = s.newID()
	record.UserID = userID
	record.CreatedAt = s.now().UTC()

	stored, err := s.entryRepository.Create(ctx, record)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error creating entry: %w", err)
	}

	return normalizer.ForResponse(stored), nil
}

func (s *entryService) release(ctx context.Context, reference string) models.ReleaseResult {
	if s.releaser == nil || !normalizer.IsLocalResource(reference) {
		return models.ReleaseResult{Reference: reference}
	}

	result := s.releaser.Release(ctx, reference)
	if result.Err != nil {
		logger.FromContext(ctx).Warn().
			Err(result.Err).
			Str("reference", reference).
			Msg("failed to release local audio")
	}

	return result
}

// discard frees a recording that no entry references. Local files are
// released. Remote objects cannot be removed through the blob store, so they
// are logged for cleanup.
func (s *entryService) discard(ctx context.Context, reference, reason string) {
	if normalizer.IsLocalResource(reference) {
		s.release(ctx, reference)
		return
	}

	logger.FromContext(ctx).Warn().
		Str("reference", reference).
		Str("reason", reason).
		Msg("remote audio left in blob store")
}

// NormalizePagination clamps page to at least 1 and limit to [1, MaxPageLimit].
// A limit below 1 (including a missing one) selects DefaultPageLimit.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return page, limit
}

func translateStoreError(err error) error {
	if errors.Is(err, store.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}
