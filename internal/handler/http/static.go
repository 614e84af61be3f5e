// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-diary/internal/blob"
)

// serveVoice serves uploaded audio from the local voice directory.
// Directory listings are not exposed.
func (h *Handler) serveVoice() http.HandlerFunc {
	files := http.StripPrefix(blob.PublicPrefix+"/", http.FileServer(http.Dir(h.voiceDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
