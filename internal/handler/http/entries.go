// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
	"github.com/go-chi/chi/v5"
)

const (
	audioField    = "audio"
	titleField    = "title"
	durationField = "duration"

	// multipartMemory is the share of a voice form kept in memory; the rest
	// spills to temporary files.
	multipartMemory = 1 << 20
	// multipartOverhead is allowed on top of the audio size for the other
	// form fields and part headers.
	multipartOverhead = 1 << 20
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	entry, err := h.services.EntryService.CreateEntry(ctx, userIDFromContext(ctx), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry, http.StatusCreated)
}

func (h *Handler) createVoiceEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: %w", blob.ErrFileTooLarge, err))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("error removing multipart files")
		}
	}()

	file, header, err := r.FormFile(audioField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", blob.ErrMissingFile, err))
		return
	}
	defer file.Close()

	upload := models.VoiceUpload{
		Title:       formValue(r, titleField),
		Duration:    formValue(r, durationField),
		Audio:       file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	entry, err := h.services.EntryService.CreateVoiceEntry(ctx, userIDFromContext(ctx), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	// Unparsable values fall back to the service defaults.
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	entries, err := h.services.EntryService.ListEntries(ctx, userIDFromContext(ctx), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing entries")
	}
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := h.services.EntryService.GetEntry(ctx, userIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.EntryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	entry, err := h.services.EntryService.UpdateEntry(ctx, userIDFromContext(ctx), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	released, err := h.services.EntryService.DeleteEntry(ctx, userIDFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if released.Attempted {
		log.Debug().Str("reference", released.Reference).Bool("released", released.Released()).Msg("entry audio release")
	}
	utils.WriteMessage(w, app.MsgEntryDeleted, http.StatusOK)
}

func (h *Handler) writeEntry(w http.ResponseWriter, r *http.Request, entry models.Entry, status int) {
	if _, err := utils.WriteJSON(w, entry, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing entry")
	}
}

// formValue returns a pointer to the first value of a multipart field, or
// nil when the field was not sent at all.
func formValue(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
