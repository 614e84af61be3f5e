// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("email and password are required")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrWrongCredentials    = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoUserID = errors.New("no user ID was given")
	ErrEntryNotFound      = errors.New("entry not found")

	ErrBlobUpload             = errors.New("failed to upload audio")
	ErrBlobStoreNotConfigured = errors.New("no audio store is configured")
)
