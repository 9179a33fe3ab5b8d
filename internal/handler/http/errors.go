// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before validation runs.
var (
	// ErrInvalidRequestBody is returned when the JSON body cannot be decoded
	// into the operation's request model or exceeds the body size limit.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidQueryParameter is returned when a query parameter cannot be
	// converted to the type of its target field.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrUnsupportedBindingTarget is returned when a request model has a
	// field kind the query binder cannot fill.
	ErrUnsupportedBindingTarget = errors.New("unsupported binding target")
)
