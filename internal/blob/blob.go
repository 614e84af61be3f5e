// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blob stores uploaded voice recordings.
//
// Two backends implement [Store]: [S3Store] puts objects into an
// S3-compatible bucket and [LocalStore] writes files under a directory that
// the HTTP layer serves statically. [LocalStore] is also a [Releaser] and
// removes the file behind a local reference when its entry is deleted.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=blob.go -destination=../mock/blob_mock.go -package=mock

// DefaultMaxUploadSize is the largest accepted audio upload (20 MiB).
const DefaultMaxUploadSize int64 = 20 << 20

var (
	ErrMissingFile          = errors.New("no audio file provided")
	ErrUnsupportedMediaType = errors.New("unsupported audio type")
	ErrFileTooLarge         = errors.New("audio file is too large")
	ErrUpload               = errors.New("error uploading audio")
)

// allowedAudioTypes maps each accepted MIME type to the file extension used
// when the client filename carries none.
var allowedAudioTypes = map[string]string{
	"audio/webm": ".webm",
	"audio/mpeg": ".mp3",
	"audio/mp4":  ".m4a",
	"audio/wav":  ".wav",
	"audio/ogg":  ".ogg",
}

// Object describes an upload.
type Object struct {
	// Filename is the name the client sent, used only for its extension.
	Filename    string
	ContentType string
	Size        int64
}

// Store persists an audio object and returns the reference clients use to
// fetch it.
type Store interface {
	Upload(ctx context.Context, r io.Reader, obj Object) (string, error)
}

// Releaser frees the resource behind a reference.
type Releaser interface {
	Release(ctx context.Context, reference string) models.ReleaseResult
}

// CheckAudio validates the declared type and size of an upload against the
// allow-list and maxSize. A non-positive maxSize selects
// [DefaultMaxUploadSize].
func CheckAudio(obj Object, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if obj.Size > maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, obj.Size, maxSize)
	}

	mediaType := normalizeMediaType(obj.ContentType)
	if _, ok := allowedAudioTypes[mediaType]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, obj.ContentType)
	}

	return nil
}

// Extension returns the extension to store obj under: the client filename's
// extension when present, otherwise the one registered for its type.
func Extension(obj Object) string {
	if ext := strings.ToLower(filepath.Ext(obj.Filename)); isSafeExtension(ext) {
		return ext
	}
	return allowedAudioTypes[normalizeMediaType(obj.ContentType)]
}

func normalizeMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func isSafeExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 8 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
