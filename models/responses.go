// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// MessageResponse is the generic `{"message": "..."}` body used for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse is the body of GET /api/auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// VoiceUpload carries a multipart voice upload from the transport layer to
// the entry service.
type VoiceUpload struct {
	Title *string
	// Duration is the raw form value; nil when the field was not sent.
	Duration    *string
	Audio       io.Reader
	Filename    string
	ContentType string
	// Size is the size declared by the multipart header.
	Size int64
}
