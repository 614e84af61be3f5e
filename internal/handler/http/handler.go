// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize bounds the audio part of a voice upload.
	maxUploadSize int64
	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration
	// voiceDir is served under /uploads/voices/ when set.
	voiceDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:      services,
		maxUploadSize: blob.DefaultMaxUploadSize,
		logger:        logger,
	}
	if cfg != nil {
		if cfg.Server.MaxUploadSize > 0 {
			h.maxUploadSize = cfg.Server.MaxUploadSize
		}
		h.requestTimeout = cfg.Server.RequestTimeout
		h.voiceDir = cfg.Storage.Files.VoiceDir
	}

	return h
}
