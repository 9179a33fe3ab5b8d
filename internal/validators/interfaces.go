// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators rejects malformed gateway input before any upstream
// call is attempted.
//
// Core concepts:
//   - Rules: pure predicates over strings (identifiers and semicolon
//     delimited lists). They never panic and never allocate errors.
//   - Validator: validates request models or single values and reports the
//     first failure as one of the sentinel errors in errors.go.
//
// The same rules back the struct tags "identifier", "numlist", "delimlist"
// and "scheduled" used on request models in package models.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input. For plain string values the
	// field names select which rule applies (see the Field* constants).
	Validate(context.Context, any, ...string) error
}
