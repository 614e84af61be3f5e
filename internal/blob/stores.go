// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"context"

	appconfig "github.com/MKhiriev/go-diary/internal/config"
)

// Stores holds the configured upload backend and the releaser for local
// recordings. Releaser is nil when no voice directory is configured.
type Stores struct {
	Store    Store
	Releaser Releaser
	Local    *LocalStore
}

// NewStores selects S3 when a bucket is configured and the local directory
// otherwise. Local recordings written before a switch to S3 are still
// released through the local store.
func NewStores(ctx context.Context, cfg appconfig.Storage) (*Stores, error) {
	stores := &Stores{}

	if cfg.Files.VoiceDir != "" {
		stores.Local = NewLocalStore(cfg.Files.VoiceDir)
		stores.Store = stores.Local
		stores.Releaser = stores.Local
	}

	if cfg.Blob.S3.Enabled() {
		s3Store, err := NewS3Store(ctx, cfg.Blob.S3)
		if err != nil {
			return nil, err
		}
		stores.Store = s3Store
	}

	return stores, nil
}
