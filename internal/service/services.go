// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-diary/internal/blob"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type Services struct {
	AuthService    AuthService
	EntryService   EntryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, blobs *blob.Stores, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	entryService := NewEntryValidationService().Wrap(
		NewEntryService(storages.EntryRepository, blobs, cfg, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		EntryService:   entryService,
		AppInfoService: appInfoService,
	}, nil
}
