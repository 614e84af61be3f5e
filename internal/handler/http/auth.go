// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", foundUser.UserID).Msg("user logged in")
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.services.AuthService.Me(ctx, userIDFromContext(ctx))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.MeResponse{User: user}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing user")
	}
}

// decodeCredentials reads an email/password pair. Missing fields are
// rejected here so that malformed JSON and empty input answer alike.
func decodeCredentials(r *http.Request) (models.User, error) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	if user.Email == "" || user.Password == "" {
		return models.User{}, service.ErrInvalidDataProvided
	}

	return user, nil
}
