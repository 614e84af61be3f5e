// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the diary settings from the process environment.
//
// Variables are grouped by the envPrefix tags of [StructuredConfig]:
//
//	APP_*              token signing, bcrypt cost, build version
//	SERVER_*           listen address, request timeout, upload limit
//	STORAGE_DB_*       database driver and DSN
//	STORAGE_FILES_*    voice and temp directories
//	STORAGE_BLOB_S3_*  optional S3 bucket for recordings
//
// CONFIG names an optional JSON file. Unset variables leave their field zero
// so the other sources can fill it during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
