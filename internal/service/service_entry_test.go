// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/normalizer"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  = int64(7)
	testEntryID = "0190c5a8-8f2e-7b3a-9c1d-2e4f6a8b0c1d"
)

var testNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

type entrySvcFixture struct {
	svc      *entryService
	repo     *mock.MockEntryRepository
	store    *mock.MockStore
	releaser *mock.MockReleaser
	tempDir  string
}

// newTestEntrySvc: хелпер для создания entryService с моками репозитория и хранилища
func newTestEntrySvc(t *testing.T) entrySvcFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := entrySvcFixture{
		repo:     mock.NewMockEntryRepository(ctrl),
		store:    mock.NewMockStore(ctrl),
		releaser: mock.NewMockReleaser(ctrl),
		tempDir:  t.TempDir(),
	}

	cfg := &config.StructuredConfig{}
	cfg.Storage.Files.TempDir = f.tempDir
	cfg.Server.MaxUploadSize = 1 << 20

	blobs := &blob.Stores{Store: f.store, Releaser: f.releaser}
	f.svc = NewEntryService(f.repo, blobs, cfg, logger.Nop()).(*entryService)
	f.svc.newID = func() string { return testEntryID }
	f.svc.now = func() time.Time { return testNow }

	return f
}

// storedFrom mirrors what the repository returns for an inserted record.
func storedFrom(r models.StorageRecord) models.StoredEntry {
	return models.StoredEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      string(r.Type),
		Title:     strPtr(r.Title),
		Content:   strPtr(r.Content),
		MediaURLs: []byte(r.MediaURLs),
		AudioURL:  r.AudioURL,
		Duration:  r.Duration,
		CreatedAt: r.CreatedAt,
	}
}

func assertTempDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp upload must be released")
}

// ── CreateEntry ──────────────────────────────────────────────────────────────

func TestEntryService_CreateEntry(t *testing.T) {
	f := newTestEntrySvc(t)
	ctx := context.Background()

	f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.StorageRecord) (models.StoredEntry, error) {
			assert.Equal(t, testEntryID, r.ID)
			assert.Equal(t, testUserID, r.UserID)
			assert.Equal(t, testNow, r.CreatedAt)
			assert.Equal(t, models.EntryTypeText, r.Type)
			assert.JSONEq(t, `["https://img/1.png"]`, r.MediaURLs)
			return storedFrom(r), nil
		},
	)

	entry, err := f.svc.CreateEntry(ctx, testUserID, models.EntryRequest{
		Title:     strPtr("Day one"),
		MediaURLs: json.RawMessage(`["https://img/1.png"]`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntryTypeText, entry.Type)
	assert.Equal(t, "Day one", entry.Title)
	assert.Equal(t, []string{"https://img/1.png"}, entry.MediaURLs)
}

func TestEntryService_CreateEntry_ValidationNeverReachesStorage(t *testing.T) {
	f := newTestEntrySvc(t)

	_, err := f.svc.CreateEntry(context.Background(), testUserID, models.EntryRequest{Content: strPtr("   ")})
	assert.ErrorIs(t, err, normalizer.ErrEmptyEntry)
	assert.ErrorIs(t, err, normalizer.ErrValidation)
}

func TestEntryService_CreateEntry_LocalAudioURLIsRejected(t *testing.T) {
	f := newTestEntrySvc(t)

	for _, audio := range []string{"/uploads/voices/someone-else.webm", "uploads/voices/someone-else.webm", "someone-else.webm"} {
		_, err := f.svc.CreateEntry(context.Background(), testUserID, models.EntryRequest{Title: strPtr("mine"), AudioURL: strPtr(audio)})
		assert.ErrorIs(t, err, normalizer.ErrInvalidAudioURL, audio)
	}
}

func TestEntryService_CreateEntry_StorageError(t *testing.T) {
	f := newTestEntrySvc(t)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.StoredEntry{}, store.ErrExecutingQuery)

	_, err := f.svc.CreateEntry(context.Background(), testUserID, models.EntryRequest{Content: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── CreateVoiceEntry ─────────────────────────────────────────────────────────

func voiceUpload(body string) models.VoiceUpload {
	return models.VoiceUpload{
		Title:       strPtr("Walk"),
		Duration:    strPtr("12.7"),
		Audio:       strings.NewReader(body),
		Filename:    "memo.webm",
		ContentType: "audio/webm",
		Size:        int64(len(body)),
	}
}

func TestEntryService_CreateVoiceEntry_Success(t *testing.T) {
	f := newTestEntrySvc(t)
	ctx := context.Background()

	gomock.InOrder(
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r io.Reader, obj blob.Object) (string, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, "voice bytes", string(data))
				assert.Equal(t, int64(len("voice bytes")), obj.Size)
				assert.Equal(t, "audio/webm", obj.ContentType)
				return "https://cdn.example.com/voices/a.webm", nil
			},
		),
		f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.StorageRecord) (models.StoredEntry, error) {
				assert.Equal(t, models.EntryTypeVoice, r.Type)
				require.NotNil(t, r.AudioURL)
				assert.Equal(t, "https://cdn.example.com/voices/a.webm", *r.AudioURL)
				require.NotNil(t, r.Duration)
				assert.Equal(t, int64(12), *r.Duration)
				return storedFrom(r), nil
			},
		),
	)

	entry, err := f.svc.CreateVoiceEntry(ctx, testUserID, voiceUpload("voice bytes"))
	require.NoError(t, err)
	assert.Equal(t, models.EntryTypeVoice, entry.Type)
	assert.Equal(t, "Walk", entry.Title)
	require.NotNil(t, entry.AudioURL)
	assertTempDirEmpty(t, f.tempDir)
}

func TestEntryService_CreateVoiceEntry_BlobFailureSkipsInsert(t *testing.T) {
	f := newTestEntrySvc(t)

	f.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unreachable"))

	_, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, voiceUpload("voice bytes"))
	assert.ErrorIs(t, err, ErrBlobUpload)
	assertTempDirEmpty(t, f.tempDir)
}

func TestEntryService_CreateVoiceEntry_InsertFailureReleasesLocalAudio(t *testing.T) {
	f := newTestEntrySvc(t)

	f.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/voices/a.webm", nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.StoredEntry{}, store.ErrExecutingQuery)
	f.releaser.EXPECT().Release(gomock.Any(), "/uploads/voices/a.webm").
		Return(models.ReleaseResult{Reference: "/uploads/voices/a.webm", Attempted: true})

	_, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, voiceUpload("voice bytes"))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assertTempDirEmpty(t, f.tempDir)
}

func TestEntryService_CreateVoiceEntry_LocalStoreReference(t *testing.T) {
	f := newTestEntrySvc(t)

	f.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("/uploads/voices/a.webm", nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.StorageRecord) (models.StoredEntry, error) {
			require.NotNil(t, r.AudioURL)
			assert.Equal(t, "/uploads/voices/a.webm", *r.AudioURL)
			return storedFrom(r), nil
		},
	)

	entry, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, voiceUpload("voice bytes"))
	require.NoError(t, err)
	require.NotNil(t, entry.AudioURL)
	assert.Equal(t, "/uploads/voices/a.webm", *entry.AudioURL)
}

func TestEntryService_CreateVoiceEntry_InsertFailureLogsRemoteAudio(t *testing.T) {
	f := newTestEntrySvc(t)
	var buf bytes.Buffer
	ctx := logger.New("test", &buf).WithContext(context.Background())

	f.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/voices/a.webm", nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.StoredEntry{}, store.ErrExecutingQuery)

	_, err := f.svc.CreateVoiceEntry(ctx, testUserID, voiceUpload("voice bytes"))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.Contains(t, buf.String(), "remote audio left in blob store")
	assert.Contains(t, buf.String(), "https://cdn.example.com/voices/a.webm")
	assertTempDirEmpty(t, f.tempDir)
}

func TestEntryService_CreateVoiceEntry_RejectedBeforeUpload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.VoiceUpload)
		wantErr error
	}{
		{
			name:    "unparsable duration",
			mutate:  func(u *models.VoiceUpload) { u.Duration = strPtr("abc") },
			wantErr: normalizer.ErrInvalidDuration,
		},
		{
			name:    "negative duration",
			mutate:  func(u *models.VoiceUpload) { u.Duration = strPtr("-3") },
			wantErr: normalizer.ErrInvalidDuration,
		},
		{
			name:    "missing file",
			mutate:  func(u *models.VoiceUpload) { u.Audio = nil },
			wantErr: blob.ErrMissingFile,
		},
		{
			name:    "not audio",
			mutate:  func(u *models.VoiceUpload) { u.ContentType = "image/png" },
			wantErr: blob.ErrUnsupportedMediaType,
		},
		{
			name:    "declared too large",
			mutate:  func(u *models.VoiceUpload) { u.Size = 2 << 20 },
			wantErr: blob.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestEntrySvc(t)
			upload := voiceUpload("voice bytes")
			tt.mutate(&upload)

			_, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, upload)
			assert.ErrorIs(t, err, tt.wantErr)
			assertTempDirEmpty(t, f.tempDir)
		})
	}
}

func TestEntryService_CreateVoiceEntry_ActualSizeIsChecked(t *testing.T) {
	f := newTestEntrySvc(t)
	upload := voiceUpload(strings.Repeat("x", (1<<20)+1))
	upload.Size = 10

	_, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, upload)
	assert.ErrorIs(t, err, blob.ErrFileTooLarge)
	assertTempDirEmpty(t, f.tempDir)
}

func TestEntryService_CreateVoiceEntry_NoStoreConfigured(t *testing.T) {
	f := newTestEntrySvc(t)
	f.svc.blobStore = nil

	_, err := f.svc.CreateVoiceEntry(context.Background(), testUserID, voiceUpload("x"))
	assert.ErrorIs(t, err, ErrBlobStoreNotConfigured)
}

// ── ListEntries ──────────────────────────────────────────────────────────────

func TestEntryService_ListEntries_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  uint64
		wantOffset uint64
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "negative page", page: -4, limit: 10, wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "limit clamped to 50", page: 1, limit: 1000, wantPage: 1, wantLimit: 50, wantOffset: 0},
		{name: "third page", page: 3, limit: 20, wantPage: 3, wantLimit: 20, wantOffset: 40},
		{name: "limit of one", page: 5, limit: 1, wantPage: 5, wantLimit: 1, wantOffset: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestEntrySvc(t)
			f.repo.EXPECT().List(gomock.Any(), testUserID, tt.wantLimit, tt.wantOffset).Return(nil, nil)

			page, err := f.svc.ListEntries(context.Background(), testUserID, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, int(tt.wantLimit), page.Limit)
			assert.NotNil(t, page.Entries)
			assert.Empty(t, page.Entries)
		})
	}
}

func TestEntryService_ListEntries_NormalizesRows(t *testing.T) {
	f := newTestEntrySvc(t)
	rows := []models.StoredEntry{
		{ID: "b", UserID: testUserID, Type: "voice", Content: strPtr("uploads/old.webm"), CreatedAt: testNow},
		{ID: "a", UserID: testUserID, Type: "text", Content: strPtr("hi"), MediaURLs: []byte("not json"), CreatedAt: testNow},
	}
	f.repo.EXPECT().List(gomock.Any(), testUserID, uint64(20), uint64(0)).Return(rows, nil)

	page, err := f.svc.ListEntries(context.Background(), testUserID, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)

	legacy := page.Entries[0]
	assert.Equal(t, models.EntryTypeVoice, legacy.Type)
	require.NotNil(t, legacy.AudioURL)
	assert.Equal(t, "/uploads/old.webm", *legacy.AudioURL)
	assert.Empty(t, legacy.Content)

	assert.Equal(t, []string{}, page.Entries[1].MediaURLs)
}

func TestNormalizePagination_HugePage(t *testing.T) {
	page, limit := NormalizePagination(int(^uint(0)>>1), 50)
	assert.Equal(t, maxPage, page)
	assert.Equal(t, 50, limit)
}

// ── GetEntry / UpdateEntry ───────────────────────────────────────────────────

func TestEntryService_GetEntry(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, UserID: testUserID, Type: "text", Content: strPtr("hi")}, nil)

		entry, err := f.svc.GetEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.Equal(t, "hi", entry.Content)
	})

	t.Run("missing", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).Return(models.StoredEntry{}, store.ErrEntryNotFound)

		_, err := f.svc.GetEntry(context.Background(), testUserID, testEntryID)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestEntryService_UpdateEntry(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, models.EntryUpdate{Title: strPtr("new")}).
			Return(models.StoredEntry{ID: testEntryID, Type: "text", Title: strPtr("new"), Content: strPtr("old")}, nil)

		entry, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, models.EntryUpdateRequest{Title: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", entry.Title)
		assert.Equal(t, "old", entry.Content)
	})

	t.Run("empty update is rejected before storage", func(t *testing.T) {
		f := newTestEntrySvc(t)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, models.EntryUpdateRequest{})
		assert.ErrorIs(t, err, normalizer.ErrNoOpUpdate)
	})

	t.Run("media update is encoded", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ int64, u models.EntryUpdate) (models.StoredEntry, error) {
				require.NotNil(t, u.MediaURLs)
				assert.JSONEq(t, `["a","b"]`, *u.MediaURLs)
				return models.StoredEntry{ID: testEntryID, Type: "text", MediaURLs: []byte(*u.MediaURLs)}, nil
			},
		)

		entry, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID,
			models.EntryUpdateRequest{MediaURLs: json.RawMessage(`"[\"a\",\"b\"]"`)})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, entry.MediaURLs)
	})

	t.Run("missing", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(models.StoredEntry{}, store.ErrEntryNotFound)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, models.EntryUpdateRequest{Content: strPtr("x")})
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("relative audio url is rejected before storage", func(t *testing.T) {
		f := newTestEntrySvc(t)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID,
			models.EntryUpdateRequest{AudioURL: strPtr("/uploads/voices/someone-else.webm")})
		assert.ErrorIs(t, err, normalizer.ErrInvalidAudioURL)
	})

	audioUpdate := models.EntryUpdateRequest{AudioURL: strPtr("https://cdn/new.webm")}
	newRow := models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("https://cdn/new.webm")}

	t.Run("replaced local recording is released", func(t *testing.T) {
		f := newTestEntrySvc(t)
		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).
				Return(models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("/uploads/voices/old.webm")}, nil),
			f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(newRow, nil),
			f.releaser.EXPECT().Release(gomock.Any(), "/uploads/voices/old.webm").
				Return(models.ReleaseResult{Reference: "/uploads/voices/old.webm", Attempted: true}),
		)

		entry, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, audioUpdate)
		require.NoError(t, err)
		require.NotNil(t, entry.AudioURL)
		assert.Equal(t, "https://cdn/new.webm", *entry.AudioURL)
	})

	t.Run("replaced legacy recording is released", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", Content: strPtr("uploads/voices/old.webm")}, nil)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(newRow, nil)
		f.releaser.EXPECT().Release(gomock.Any(), "/uploads/voices/old.webm").
			Return(models.ReleaseResult{Reference: "/uploads/voices/old.webm", Attempted: true})

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, audioUpdate)
		require.NoError(t, err)
	})

	t.Run("replaced remote recording is logged", func(t *testing.T) {
		f := newTestEntrySvc(t)
		var buf bytes.Buffer
		ctx := logger.New("test", &buf).WithContext(context.Background())

		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("https://cdn/old.webm")}, nil)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(newRow, nil)

		_, err := f.svc.UpdateEntry(ctx, testUserID, testEntryID, audioUpdate)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "remote audio left in blob store")
		assert.Contains(t, buf.String(), "https://cdn/old.webm")
	})

	t.Run("same audio url releases nothing", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).Return(newRow, nil)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(newRow, nil)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, audioUpdate)
		require.NoError(t, err)
	})

	t.Run("audio on text entry", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "text", Content: strPtr("/looks/like/a/path")}, nil)
		f.repo.EXPECT().Update(gomock.Any(), testEntryID, testUserID, gomock.Any()).Return(models.StoredEntry{}, store.ErrEntryNotVoice)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, audioUpdate)
		assert.ErrorIs(t, err, store.ErrEntryNotVoice)
	})

	t.Run("audio on missing entry", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Get(gomock.Any(), testEntryID, testUserID).Return(models.StoredEntry{}, store.ErrEntryNotFound)

		_, err := f.svc.UpdateEntry(context.Background(), testUserID, testEntryID, audioUpdate)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

// ── DeleteEntry ──────────────────────────────────────────────────────────────

func TestEntryService_DeleteEntry(t *testing.T) {
	t.Run("local recording is released", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("/uploads/voices/a.webm")}, nil)
		f.releaser.EXPECT().Release(gomock.Any(), "/uploads/voices/a.webm").
			Return(models.ReleaseResult{Reference: "/uploads/voices/a.webm", Attempted: true})

		result, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.True(t, result.Released())
	})

	t.Run("legacy recording in content is released", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", Content: strPtr("old.webm")}, nil)
		f.releaser.EXPECT().Release(gomock.Any(), "/old.webm").
			Return(models.ReleaseResult{Reference: "/old.webm", Attempted: true})

		result, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.True(t, result.Released())
	})

	t.Run("release failure does not fail the delete", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("/uploads/voices/a.webm")}, nil)
		f.releaser.EXPECT().Release(gomock.Any(), gomock.Any()).
			Return(models.ReleaseResult{Reference: "/uploads/voices/a.webm", Attempted: true, Err: os.ErrPermission})

		result, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.False(t, result.Released())
		assert.ErrorIs(t, result.Err, os.ErrPermission)
	})

	t.Run("remote recording is left alone", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "voice", AudioURL: strPtr("https://cdn/a.webm")}, nil)

		result, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.False(t, result.Attempted)
	})

	t.Run("text entry", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).
			Return(models.StoredEntry{ID: testEntryID, Type: "text", Content: strPtr("/looks/like/a/path")}, nil)

		result, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		require.NoError(t, err)
		assert.False(t, result.Attempted)
	})

	t.Run("missing", func(t *testing.T) {
		f := newTestEntrySvc(t)
		f.repo.EXPECT().Delete(gomock.Any(), testEntryID, testUserID).Return(models.StoredEntry{}, store.ErrEntryNotFound)

		_, err := f.svc.DeleteEntry(context.Background(), testUserID, testEntryID)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}
