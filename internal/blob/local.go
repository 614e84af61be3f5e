// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-diary/models"
	"github.com/google/uuid"
)

// PublicPrefix is the URL path local recordings are served under.
const PublicPrefix = "/uploads/voices"

// LocalStore keeps recordings in a directory on disk.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir. The directory is created on
// first upload.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Dir returns the directory recordings are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Upload implements [Store]. The reference is PublicPrefix/<uuid><ext>.
func (s *LocalStore) Upload(ctx context.Context, r io.Reader, obj Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	name := uuid.NewString() + Extension(obj)
	full := filepath.Join(s.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	return PublicPrefix + "/" + name, nil
}

// Release implements [Releaser]. Only the base name of reference is used,
// so a reference can never address a file outside the store directory.
// Remote references are not attempted and an already missing file counts
// as released.
func (s *LocalStore) Release(_ context.Context, reference string) models.ReleaseResult {
	result := models.ReleaseResult{Reference: reference}

	ref := strings.TrimSpace(reference)
	if ref == "" || strings.Contains(ref, "://") {
		return result
	}

	name := path.Base(filepath.ToSlash(ref))
	if name == "." || name == "/" || name == ".." {
		return result
	}

	result.Attempted = true
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		result.Err = err
	}

	return result
}
