// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// entryRepository is the SQL implementation of [EntryRepository] over the
// "entries" table. Every statement that touches an existing entry carries
// both the entry id and the owner id, so ownership is checked in the same
// statement that reads or writes the row.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.StoredEntry, error) {
	var e models.StoredEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Type,
		&e.Title,
		&e.Content,
		&e.MediaURLs,
		&e.AudioURL,
		&e.Duration,
		&e.CreatedAt,
	)
	return e, err
}

// Create inserts a normalized record and returns the stored row.
func (e *entryRepository) Create(ctx context.Context, record models.StorageRecord) (models.StoredEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(e.builder, record)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.Create").Int64("user_id", record.UserID).Msg("failed to build query")
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanEntry(e.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Create").
			Int64("user_id", record.UserID).
			Str("entry_id", record.ID).
			Msg("failed to insert entry")
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// Get returns the entry with id owned by userID, or [ErrEntryNotFound].
func (e *entryRepository) Get(ctx context.Context, id string, userID int64) (models.StoredEntry, error) {
	query, args, err := buildSelectEntryQuery(e.builder, id, userID)
	if err != nil {
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return e.queryOne(ctx, "entryRepository.Get", id, userID, query, args)
}

// List returns one page of the user's entries, newest first. It returns an
// empty slice when the page is past the end.
func (e *entryRepository) List(ctx context.Context, userID int64, limit, offset uint64) ([]models.StoredEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(e.builder, userID, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.List").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.List").
			Int64("user_id", userID).
			Uint64("limit", limit).
			Uint64("offset", offset).
			Msg("failed to execute query for listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.StoredEntry, 0, limit)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies a partial update in one statement and returns the updated
// row. A missing or foreign entry yields [ErrEntryNotFound]. An audio url
// update aimed at an owned text entry yields [ErrEntryNotVoice].
func (e *entryRepository) Update(ctx context.Context, id string, userID int64, update models.EntryUpdate) (models.StoredEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(e.builder, id, userID, update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.StoredEntry{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "entryRepository.Update").Str("entry_id", id).Msg("failed to build query")
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := e.queryOne(ctx, "entryRepository.Update", id, userID, query, args)
	if !errors.Is(err, ErrEntryNotFound) || update.AudioURL == nil {
		return updated, err
	}

	// the type predicate filtered the row out; tell a text entry from a missing one
	_, getErr := e.Get(ctx, id, userID)
	if getErr == nil {
		return models.StoredEntry{}, ErrEntryNotVoice
	}
	return models.StoredEntry{}, getErr
}

// Delete removes the entry with id owned by userID and returns the removed
// row, or [ErrEntryNotFound].
func (e *entryRepository) Delete(ctx context.Context, id string, userID int64) (models.StoredEntry, error) {
	query, args, err := buildDeleteEntryQuery(e.builder, id, userID)
	if err != nil {
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return e.queryOne(ctx, "entryRepository.Delete", id, userID, query, args)
}

func (e *entryRepository) queryOne(ctx context.Context, fn, id string, userID int64, query string, args []any) (models.StoredEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanEntry(e.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Str("entry_id", id).
			Msg("failed to execute entry query")
		return models.StoredEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}
