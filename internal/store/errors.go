// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user fails because
	// the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when no entry matches both the id and the
	// owner. A foreign entry is indistinguishable from a missing one.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrEntryNotVoice is returned when an audio url update targets an owned
	// entry that is not a voice entry.
	ErrEntryNotVoice = errors.New("audio url can only be set on a voice entry")

	// ErrNothingToUpdate is returned when an update carries no field to set.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrUnsupportedDriver is returned for a database driver other than pgx
	// or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
