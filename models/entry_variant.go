// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryVariant is the closed set of stored entry shapes. Only [TextEntry]
// and [VoiceEntry] implement it.
type EntryVariant interface {
	Kind() EntryType
	Canonical() Entry
	isEntryVariant()
}

// EntryBase holds the attributes shared by every variant.
type EntryBase struct {
	ID        string
	UserID    int64
	Title     string
	Content   string
	MediaURLs []string
	CreatedAt time.Time
}

// TextEntry is a text entry, optionally with attached media.
type TextEntry struct {
	EntryBase
}

// VoiceEntry is an entry carrying an audio recording.
type VoiceEntry struct {
	EntryBase
	AudioURL string
	Duration *int64
}

func (TextEntry) Kind() EntryType  { return EntryTypeText }
func (VoiceEntry) Kind() EntryType { return EntryTypeVoice }

func (TextEntry) isEntryVariant()  {}
func (VoiceEntry) isEntryVariant() {}

// Canonical maps a text variant to the response shape.
func (e TextEntry) Canonical() Entry {
	return e.base(EntryTypeText)
}

// Canonical maps a voice variant to the response shape.
func (e VoiceEntry) Canonical() Entry {
	entry := e.base(EntryTypeVoice)
	if e.AudioURL != "" {
		audio := e.AudioURL
		entry.AudioURL = &audio
	}
	if e.Duration != nil {
		d := *e.Duration
		entry.Duration = &d
	}
	return entry
}

func (b EntryBase) base(t EntryType) Entry {
	media := make([]string, len(b.MediaURLs))
	copy(media, b.MediaURLs)

	return Entry{
		ID:        b.ID,
		UserID:    b.UserID,
		Type:      t,
		Title:     b.Title,
		Content:   b.Content,
		MediaURLs: media,
		CreatedAt: b.CreatedAt,
	}
}
