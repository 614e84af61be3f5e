// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	meFn           func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	return m.meFn(ctx, userID)
}

// mockEntryService implements service.EntryService.
type mockEntryService struct {
	createFn      func(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error)
	createVoiceFn func(ctx context.Context, userID int64, upload models.VoiceUpload) (models.Entry, error)
	listFn        func(ctx context.Context, userID int64, page, limit int) (models.EntryPage, error)
	getFn         func(ctx context.Context, userID int64, id string) (models.Entry, error)
	updateFn      func(ctx context.Context, userID int64, id string, req models.EntryUpdateRequest) (models.Entry, error)
	deleteFn      func(ctx context.Context, userID int64, id string) (models.ReleaseResult, error)
}

func (m *mockEntryService) CreateEntry(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockEntryService) CreateVoiceEntry(ctx context.Context, userID int64, upload models.VoiceUpload) (models.Entry, error) {
	return m.createVoiceFn(ctx, userID, upload)
}

func (m *mockEntryService) ListEntries(ctx context.Context, userID int64, page, limit int) (models.EntryPage, error) {
	return m.listFn(ctx, userID, page, limit)
}

func (m *mockEntryService) GetEntry(ctx context.Context, userID int64, id string) (models.Entry, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockEntryService) UpdateEntry(ctx context.Context, userID int64, id string, req models.EntryUpdateRequest) (models.Entry, error) {
	return m.updateFn(ctx, userID, id, req)
}

func (m *mockEntryService) DeleteEntry(ctx context.Context, userID int64, id string) (models.ReleaseResult, error) {
	return m.deleteFn(ctx, userID, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID  int64 = 42
	testToken         = "valid-token"
	testEntryID       = "0190f1d2-7c3a-7b4e-9a1f-2b3c4d5e6f70"
)

// acceptingAuth admits testToken as testUserID and rejects anything else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: testUserID}, nil
		},
	}
}

func newTestHandler(t *testing.T, auth service.AuthService, entries service.EntryService) *Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, auth, entries, &config.StructuredConfig{})
}

func newTestHandlerWithConfig(t *testing.T, auth service.AuthService, entries service.EntryService, cfg *config.StructuredConfig) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		EntryService:   entries,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, cfg, logger.Nop())
}

// authorized adds the bearer header accepted by acceptingAuth.
func authorized(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}

// withUser attaches testUserID the way the auth middleware does.
func withUser(r *http.Request) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), testUserID))
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func sampleEntry() models.Entry {
	return models.Entry{
		ID:        testEntryID,
		UserID:    testUserID,
		Type:      models.EntryTypeText,
		Title:     "Monday",
		Content:   "went for a walk",
		MediaURLs: []string{},
		CreatedAt: time.Date(2026, 4, 7, 10, 0, 0, 0, time.UTC),
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, int64(20<<20), h.maxUploadSize)
	assert.Zero(t, h.requestTimeout)
	assert.Empty(t, h.voiceDir)
}

func TestNewHandler_FromConfig(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.MaxUploadSize = 1024
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Storage.Files.VoiceDir = "/var/diary/voices"

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, int64(1024), h.maxUploadSize)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, "/var/diary/voices", h.voiceDir)
}
