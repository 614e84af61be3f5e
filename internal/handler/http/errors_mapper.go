// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/normalizer"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidMultipartForm:       http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordTooLong:         http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoUserID:      http.StatusUnauthorized,
	service.ErrEntryNotFound:           http.StatusNotFound,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrBlobUpload:              http.StatusInternalServerError,
	service.ErrBlobStoreNotConfigured:  http.StatusInternalServerError,

	normalizer.ErrValidation: http.StatusBadRequest,

	blob.ErrMissingFile:          http.StatusBadRequest,
	blob.ErrUnsupportedMediaType: http.StatusBadRequest,
	blob.ErrFileTooLarge:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,
	store.ErrEntryNotVoice:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing wording of well-known errors.
// Other client errors are reported with their own message.
var errorMessageMap = map[error]string{
	ErrEmptyAuthorizationHeader:        app.MsgNoToken,
	ErrInvalidAuthorizationHeader:      app.MsgTokenIsExpiredOrInvalid,
	ErrInvalidJSON:                     app.MsgInvalidJSON,
	ErrInvalidMultipartForm:            app.MsgInvalidMultipartForm,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrValidationNoUserID:      app.MsgTokenIsExpiredOrInvalid,
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongCredentials:        app.MsgInvalidCredentials,
	store.ErrEmailAlreadyExists:        app.MsgUserAlreadyExists,
	store.ErrNoUserWasFound:            app.MsgUserNotFound,
	service.ErrEntryNotFound:           app.MsgEntryNotFound,
	store.ErrEntryNotFound:             app.MsgEntryNotFound,
	blob.ErrMissingFile:                app.MsgAudioRequired,
	blob.ErrUnsupportedMediaType:       app.MsgInvalidAudioType,
	blob.ErrFileTooLarge:               app.MsgAudioTooLarge,
	normalizer.ErrInvalidDuration:      app.MsgInvalidDuration,
	normalizer.ErrInvalidAudioURL:      app.MsgInvalidAudioURL,
	store.ErrEntryNotVoice:             app.MsgEntryNotVoice,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError answers with the status mapped from err. Server-side failures
// are logged and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		utils.WriteMessage(w, app.MsgInternalServerError, status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, messageFromError(err), status)
}
