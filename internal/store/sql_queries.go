// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-diary/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable   = "users"
	entriesTable = "entries"
)

var (
	userColumns  = []string{"user_id", "email", "password", "created_at"}
	entryColumns = []string{"id", "user_id", "type", "title", "content", "media_urls", "audio_url", "duration", "created_at"}

	returningUser  = "RETURNING " + strings.Join(userColumns, ", ")
	returningEntry = "RETURNING " + strings.Join(entryColumns, ", ")
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password", "created_at").
		Values(user.Email, user.Password, user.CreatedAt).
		Suffix(returningUser).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where("email = ?", email).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where("user_id = ?", userID).
		ToSql()
}

func buildInsertEntryQuery(b sq.StatementBuilderType, r models.StorageRecord) (string, []any, error) {
	return b.Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			r.ID,
			r.UserID,
			string(r.Type),
			r.Title,
			r.Content,
			r.MediaURLs,
			nullableString(r.AudioURL),
			nullableInt64(r.Duration),
			r.CreatedAt,
		).
		Suffix(returningEntry).
		ToSql()
}

func buildSelectEntryQuery(b sq.StatementBuilderType, id string, userID int64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		ToSql()
}

// buildListEntriesQuery selects one page of a user's entries, newest first.
// id breaks ties between entries created in the same instant.
func buildListEntriesQuery(b sq.StatementBuilderType, userID int64, limit, offset uint64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(entriesTable).
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// Rows written before audio_url existed keep a voice recording path in
// content. An update that touches only one of the two columns moves that path
// into audio_url first, so neither the new text nor the new url is mistaken
// for the recording.
const legacyVoiceRow = "type = ? AND COALESCE(audio_url, '') = '' AND content <> ''"

var (
	promoteLegacyAudio = "CASE WHEN " + legacyVoiceRow +
		" THEN CASE WHEN content LIKE '/%' OR content LIKE '%://%' THEN content ELSE '/' || content END" +
		" ELSE audio_url END"
	clearLegacyAudio = "CASE WHEN " + legacyVoiceRow + " THEN '' ELSE content END"
)

// buildUpdateEntryQuery builds a single UPDATE that sets exactly the fields
// present in update, in the fixed order title, content, media_urls,
// audio_url. Setting an audio url is restricted to voice entries.
func buildUpdateEntryQuery(b sq.StatementBuilderType, id string, userID int64, update models.EntryUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	voice := string(models.EntryTypeVoice)
	query := b.Update(entriesTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	switch {
	case update.Content != nil:
		query = query.Set("content", *update.Content)
	case update.AudioURL != nil:
		query = query.Set("content", sq.Expr(clearLegacyAudio, voice))
	}
	if update.MediaURLs != nil {
		query = query.Set("media_urls", *update.MediaURLs)
	}
	switch {
	case update.AudioURL != nil:
		query = query.Set("audio_url", *update.AudioURL)
	case update.Content != nil:
		query = query.Set("audio_url", sq.Expr(promoteLegacyAudio, voice))
	}

	query = query.
		Where("id = ?", id).
		Where("user_id = ?", userID)

	if update.AudioURL != nil {
		query = query.Where(sq.Eq{"type": voice})
	}

	return query.Suffix(returningEntry).ToSql()
}

// buildDeleteEntryQuery deletes an owned entry and returns the removed row so
// the caller can release the resources it referenced.
func buildDeleteEntryQuery(b sq.StatementBuilderType, id string, userID int64) (string, []any, error) {
	return b.Delete(entriesTable).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Suffix(returningEntry).
		ToSql()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt64(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}
