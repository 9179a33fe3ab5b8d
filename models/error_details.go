// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// ErrorDetail is the JSON body returned to REST callers when a request is
// rejected locally or the upstream PhoneNotify service fails.
//
// Catalog entries below are allocated once and shared by reference. They must
// never be mutated; use [ErrorDetail.WithMessage] to derive a per-request copy.
type ErrorDetail struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Error implements the error interface so a detail can travel through
// error-returning code paths unchanged.
func (e *ErrorDetail) Error() string {
	return e.Message
}

// WithMessage returns a copy of e carrying msg instead of the catalog text.
func (e *ErrorDetail) WithMessage(msg string) *ErrorDetail {
	return &ErrorDetail{StatusCode: e.StatusCode, Message: msg}
}

var (
	InvalidLicenseKeyFormat = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid licenseKey format.",
	}
	InvalidConferenceKeyFormat = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid conferenceKey format.",
	}
	InvalidQueueIDsFormat = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid queueIDs format.",
	}
	InvalidPhoneNumbersToDialFormat = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid phoneNumbersToDial format.",
	}
	InvalidRequestBody = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body.",
	}
	InvalidRequestParameters = &ErrorDetail{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request parameters.",
	}

	// UpstreamFailure is the template for faults and transport errors raised
	// by the PhoneNotify service. The message is replaced per request.
	UpstreamFailure = &ErrorDetail{
		StatusCode: http.StatusBadGateway,
		Message:    "Upstream service failure.",
	}

	InternalServerError = &ErrorDetail{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error.",
	}
)
