// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// EntryType is the discriminant of a diary entry.
type EntryType string

const (
	// EntryTypeText marks an entry whose body is text (optionally with media).
	EntryTypeText EntryType = "text"
	// EntryTypeVoice marks an entry that carries an audio recording.
	EntryTypeVoice EntryType = "voice"
)

// Entry is the canonical shape of a diary entry returned to clients,
// regardless of the schema generation the row was written with.
type Entry struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Type      EntryType `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	MediaURLs []string  `json:"mediaUrls"`
	AudioURL  *string   `json:"audioUrl,omitempty"`
	Duration  *int64    `json:"duration,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryRequest is the create payload of POST /api/entries.
//
// MediaURLs is kept raw because clients send it either as a JSON array or as
// a string holding an encoded array.
type EntryRequest struct {
	Title     *string         `json:"title,omitempty"`
	Content   *string         `json:"content,omitempty"`
	MediaURLs json.RawMessage `json:"mediaUrls,omitempty"`
	AudioURL  *string         `json:"audioUrl,omitempty"`
	Duration  *float64        `json:"duration,omitempty"`
}

// EntryUpdateRequest is the payload of PUT /api/entries/{id}.
// A nil field means "not supplied" and leaves the stored value untouched.
type EntryUpdateRequest struct {
	Title     *string         `json:"title,omitempty"`
	Content   *string         `json:"content,omitempty"`
	MediaURLs json.RawMessage `json:"mediaUrls,omitempty"`
	AudioURL  *string         `json:"audioUrl,omitempty"`
}

// EntryUpdate is a normalized partial update. MediaURLs, when present,
// already holds the storage encoding (a JSON array).
type EntryUpdate struct {
	Title     *string
	Content   *string
	MediaURLs *string
	AudioURL  *string
}

// IsEmpty reports whether no field is supplied.
func (u EntryUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.MediaURLs == nil && u.AudioURL == nil
}

// StorageRecord is a normalized entry ready to be inserted.
type StorageRecord struct {
	ID        string
	UserID    int64
	Type      EntryType
	Title     string
	Content   string
	MediaURLs string
	AudioURL  *string
	Duration  *int64
	CreatedAt time.Time
}

// StoredEntry is an entry row exactly as read from the database. Nullable
// columns are pointers because rows written by older schema generations may
// lack them.
type StoredEntry struct {
	ID        string
	UserID    int64
	Type      string
	Title     *string
	Content   *string
	MediaURLs []byte
	AudioURL  *string
	Duration  *int64
	CreatedAt time.Time
}

// EntryPage is the paginated list response.
type EntryPage struct {
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	Entries []Entry `json:"entries"`
}

// ReleaseResult reports the outcome of releasing a locally-held resource
// that belonged to a deleted entry.
type ReleaseResult struct {
	// Reference is the audio reference the release was attempted for.
	Reference string
	// Attempted is false when the entry held no local resource.
	Attempted bool
	// Err is the release failure, if any.
	Err error
}

// Released reports whether a release was attempted and succeeded.
func (r ReleaseResult) Released() bool {
	return r.Attempted && r.Err == nil
}
