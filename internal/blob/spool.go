// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// TempFile is a spooled copy of an upload. It must be released once the
// upload has been handed to a [Store], whatever the outcome.
type TempFile struct {
	*os.File
	size int64
	once sync.Once
	err  error
}

// Spool copies r into a new temp file in dir (created if missing) and
// rewinds it for reading.
func Spool(r io.Reader, dir, pattern string) (*TempFile, error) {
	if r == nil {
		return nil, ErrMissingFile
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating temp dir: %w", err)
	}

	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("error creating temp file: %w", err)
	}
	tmp := &TempFile{File: f}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = tmp.Release()
		return nil, fmt.Errorf("error spooling upload: %w", err)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		_ = tmp.Release()
		return nil, fmt.Errorf("error rewinding upload: %w", err)
	}
	tmp.size = n

	return tmp, nil
}

// Size is the number of bytes spooled.
func (t *TempFile) Size() int64 {
	return t.size
}

// Release closes and removes the temp file. It is safe to call more than once.
func (t *TempFile) Release() error {
	if t == nil || t.File == nil {
		return nil
	}
	t.once.Do(func() {
		closeErr := t.File.Close()
		removeErr := os.Remove(t.File.Name())
		if errors.Is(removeErr, fs.ErrNotExist) {
			removeErr = nil
		}
		if errors.Is(closeErr, os.ErrClosed) {
			closeErr = nil
		}
		t.err = errors.Join(closeErr, removeErr)
	})
	return t.err
}
