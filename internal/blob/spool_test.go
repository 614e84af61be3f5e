// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestSpool(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tmp")

	tmp, err := Spool(strings.NewReader("voice bytes"), dir, "voice-*")
	require.NoError(t, err)
	assert.Equal(t, int64(len("voice bytes")), tmp.Size())

	data, err := io.ReadAll(tmp)
	require.NoError(t, err)
	assert.Equal(t, "voice bytes", string(data))

	name := tmp.Name()
	require.NoError(t, tmp.Release())
	_, err = os.Stat(name)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, tmp.Release(), "second release is a no-op")
}

func TestSpool_ReadFailureLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()

	_, err := Spool(failingReader{}, dir, "voice-*")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSpool_NilReader(t *testing.T) {
	_, err := Spool(nil, t.TempDir(), "voice-*")
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestTempFile_ReleaseNil(t *testing.T) {
	var tmp *TempFile
	assert.NoError(t, tmp.Release())
}
