// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides reusable input validation for the service
// layer.
//
// A Validator checks an arbitrary value and can be scoped to a subset of
// named fields, so one implementation serves several operations (for
// example registration checks more than login does).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
