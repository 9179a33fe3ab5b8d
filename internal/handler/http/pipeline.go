// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"reflect"

	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/utils"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
)

// licenseKeyHeader carries the caller's upstream license key.
const licenseKeyHeader = "LicenseKey"

// none is the request model of operations without input.
type none struct{}

// paramSource says where an operation reads its request model from.
type paramSource int

const (
	fromNothing paramSource = iota
	fromBody
	fromQuery
)

func (s paramSource) binder() binder {
	switch s {
	case fromBody:
		return bindJSON
	case fromQuery:
		return bindQuery
	default:
		return nil
	}
}

// operation describes one REST endpoint: whether it needs a license key,
// where its request model is read from and which translator method serves it.
type operation[Req, Res any] struct {
	name     string
	licensed bool
	source   paramSource
	call     func(ctx context.Context, licenseKey string, req Req) (Res, error)
}

// endpoint is a pipeline handler that also describes itself for the
// OpenAPI document.
type endpoint struct {
	http.HandlerFunc
	doc operationDoc
}

type operationDoc struct {
	name     string
	licensed bool
	source   paramSource
	request  reflect.Type
	response reflect.Type
}

// handle runs the request pipeline shared by every endpoint: license key
// check, binding, validation, translation and the JSON response. The first
// failing step ends the request with an ErrorDetail body.
func handle[Req, Res any](h *Handler, op operation[Req, Res]) endpoint {
	bind := op.source.binder()

	serve := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var licenseKey string
		if op.licensed {
			licenseKey = r.Header.Get(licenseKeyHeader)
			if err := h.validator.Validate(ctx, licenseKey, validators.FieldLicenseKey); err != nil {
				writeError(w, r, op.name, err)
				return
			}
		}

		var req Req
		if bind != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
			if err := bind(r, &req); err != nil {
				writeError(w, r, op.name, err)
				return
			}
			if err := h.validator.Validate(ctx, req); err != nil {
				writeError(w, r, op.name, err)
				return
			}
		}

		res, err := op.call(ctx, licenseKey, req)
		if err != nil {
			writeError(w, r, op.name, err)
			return
		}

		if _, err = utils.WriteJSON(w, res, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("operation", op.name).Msg("error writing response")
		}
	}

	return endpoint{
		HandlerFunc: serve,
		doc: operationDoc{
			name:     op.name,
			licensed: op.licensed,
			source:   op.source,
			request:  reflect.TypeFor[Req](),
			response: reflect.TypeFor[Res](),
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, name string, err error) {
	detail := errorDetailFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if detail.StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("operation", name).Int("status", detail.StatusCode).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, detail, detail.StatusCode); writeErr != nil {
		log.Err(writeErr).Str("operation", name).Msg("error writing error response")
	}
}

// Constructors for the translator method shapes used by the routes.

func licensedBody[Req, Res any](h *Handler, name string, fn func(context.Context, string, Req) (Res, error)) endpoint {
	return handle(h, operation[Req, Res]{name: name, licensed: true, source: fromBody, call: fn})
}

func licensedQuery[Req, Res any](h *Handler, name string, fn func(context.Context, string, Req) (Res, error)) endpoint {
	return handle(h, operation[Req, Res]{name: name, licensed: true, source: fromQuery, call: fn})
}

func licensedNoInput[Res any](h *Handler, name string, fn func(context.Context, string) (Res, error)) endpoint {
	return handle(h, operation[none, Res]{
		name:     name,
		licensed: true,
		call: func(ctx context.Context, licenseKey string, _ none) (Res, error) {
			return fn(ctx, licenseKey)
		},
	})
}

func publicQuery[Req, Res any](h *Handler, name string, fn func(context.Context, Req) (Res, error)) endpoint {
	return handle(h, operation[Req, Res]{
		name:   name,
		source: fromQuery,
		call: func(ctx context.Context, _ string, req Req) (Res, error) {
			return fn(ctx, req)
		},
	})
}

func publicNoInput[Res any](h *Handler, name string, fn func(context.Context) (Res, error)) endpoint {
	return handle(h, operation[none, Res]{
		name: name,
		call: func(ctx context.Context, _ string, _ none) (Res, error) {
			return fn(ctx)
		},
	})
}
