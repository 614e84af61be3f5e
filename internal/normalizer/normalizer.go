// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalizer is the single translation boundary between the entry
// payloads clients send, the rows the storage layer persists and the
// canonical [models.Entry] returned by the API.
//
// Writes go through [ForStorage] and [ForUpdate], which validate and encode
// the payload. Reads go through [ForResponse], which never fails: rows
// written by any schema generation (including legacy voice rows that kept
// the audio path in the content column) are mapped to the same shape, and
// malformed stored values degrade to safe defaults.
package normalizer

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-diary/models"
)

// maxDuration is the largest duration the storage column can hold.
const maxDuration = math.MaxInt32

// ForStorage validates a create payload sent by a client and maps it to a
// storage record.
//
// The entry becomes a voice entry iff a non-blank audio URL is present. A
// client supplied audio URL must be an absolute http or https URL: local
// recordings are only ever referenced through [ForUploadedVoice]. Title and
// content default to the empty string. Media URLs are always encoded as a
// JSON array.
func ForStorage(req models.EntryRequest) (models.StorageRecord, error) {
	audio := strings.TrimSpace(valueOrEmpty(req.AudioURL))
	if audio != "" {
		if err := checkRemoteAudioURL(audio); err != nil {
			return models.StorageRecord{}, err
		}
	}

	return normalize(req, audio)
}

// ForUploadedVoice maps a voice upload to a storage record. audioURL is the
// reference the blob store returned for the recording and may point at a
// file held by this server.
func ForUploadedVoice(title *string, audioURL string, duration *int64) (models.StorageRecord, error) {
	audio := strings.TrimSpace(audioURL)
	if audio == "" {
		return models.StorageRecord{}, ErrEmptyAudioURL
	}

	req := models.EntryRequest{Title: title}
	if duration != nil {
		seconds := float64(*duration)
		req.Duration = &seconds
	}

	return normalize(req, audio)
}

func normalize(req models.EntryRequest, audio string) (models.StorageRecord, error) {
	media, err := decodeRequestMedia(req.MediaURLs)
	if err != nil {
		return models.StorageRecord{}, err
	}

	title := valueOrEmpty(req.Title)
	content := valueOrEmpty(req.Content)

	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" && len(media) == 0 && audio == "" {
		return models.StorageRecord{}, ErrEmptyEntry
	}

	duration, err := coerceDuration(req.Duration)
	if err != nil {
		return models.StorageRecord{}, err
	}
	if duration != nil && audio == "" {
		return models.StorageRecord{}, ErrDurationWithoutAudio
	}

	record := models.StorageRecord{
		Type:      models.EntryTypeText,
		Title:     title,
		Content:   content,
		MediaURLs: encodeMedia(media),
	}

	if audio != "" {
		record.Type = models.EntryTypeVoice
		record.AudioURL = &audio
		record.Duration = duration
	}

	return record, nil
}

// ParseDuration parses a duration sent as a form value. A nil raw value
// means the field was not sent.
func ParseDuration(raw *string) (*int64, error) {
	if raw == nil {
		return nil, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	return coerceDuration(&value)
}

// ForUpdate maps an update payload to the subset of fields it supplies.
// An empty subset is rejected with [ErrNoOpUpdate]. A supplied audio url
// must not be blank, since a voice entry always keeps its recording, and
// must be an absolute http or https URL.
func ForUpdate(req models.EntryUpdateRequest) (models.EntryUpdate, error) {
	update := models.EntryUpdate{
		Title:   req.Title,
		Content: req.Content,
	}

	if !isAbsent(req.MediaURLs) {
		media, err := decodeRequestMedia(req.MediaURLs)
		if err != nil {
			return models.EntryUpdate{}, err
		}
		encoded := encodeMedia(media)
		update.MediaURLs = &encoded
	}

	if req.AudioURL != nil {
		audio := strings.TrimSpace(*req.AudioURL)
		if audio == "" {
			return models.EntryUpdate{}, ErrEmptyAudioURL
		}
		if err := checkRemoteAudioURL(audio); err != nil {
			return models.EntryUpdate{}, err
		}
		update.AudioURL = &audio
	}

	if update.IsEmpty() {
		return models.EntryUpdate{}, ErrNoOpUpdate
	}

	return update, nil
}

// Classify maps a stored row of any schema generation to its variant.
//
// A row is a voice entry when its stored type says so, or when the type is
// missing or unknown and the row carries audio. Legacy voice rows keep the
// audio path in content; it is moved to the audio reference and content is
// cleared.
func Classify(row models.StoredEntry) models.EntryVariant {
	base := models.EntryBase{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     valueOrEmpty(row.Title),
		Content:   valueOrEmpty(row.Content),
		MediaURLs: decodeStoredMedia(row.MediaURLs),
		CreatedAt: row.CreatedAt,
	}
	audio := strings.TrimSpace(valueOrEmpty(row.AudioURL))

	switch models.EntryType(row.Type) {
	case models.EntryTypeText:
		return models.TextEntry{EntryBase: base}
	case models.EntryTypeVoice:
	default:
		if audio == "" {
			return models.TextEntry{EntryBase: base}
		}
	}

	if audio == "" && strings.TrimSpace(base.Content) != "" {
		audio = legacyAudioReference(base.Content)
		base.Content = ""
	}

	return models.VoiceEntry{
		EntryBase: base,
		AudioURL:  audio,
		Duration:  validDuration(row.Duration),
	}
}

// ForResponse maps a stored row to the canonical entry shape. It never fails.
func ForResponse(row models.StoredEntry) models.Entry {
	return Classify(row).Canonical()
}

// ForResponseList maps stored rows to canonical entries, preserving order.
func ForResponseList(rows []models.StoredEntry) []models.Entry {
	entries := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ForResponse(row))
	}
	return entries
}

// AudioReference returns the audio reference a stored row points at, using
// the same legacy rules as [Classify]. It is empty for text entries.
func AudioReference(row models.StoredEntry) string {
	if voice, ok := Classify(row).(models.VoiceEntry); ok {
		return voice.AudioURL
	}
	return ""
}

// IsLocalResource reports whether an audio reference points at a file held
// by this server rather than at an absolute URL.
func IsLocalResource(reference string) bool {
	reference = strings.TrimSpace(reference)
	return reference != "" && !strings.Contains(reference, "://")
}

func checkRemoteAudioURL(audio string) error {
	u, err := url.Parse(audio)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAudioURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAudioURL
	}
	return nil
}

func coerceDuration(value *float64) (*int64, error) {
	if value == nil {
		return nil, nil
	}

	d := *value
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 || d > maxDuration {
		return nil, ErrInvalidDuration
	}

	seconds := int64(math.Floor(d))
	return &seconds, nil
}

func validDuration(d *int64) *int64 {
	if d == nil || *d < 0 {
		return nil
	}
	v := *d
	return &v
}

func legacyAudioReference(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "/") || strings.Contains(content, "://") {
		return content
	}
	return "/" + content
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
