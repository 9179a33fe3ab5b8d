package http

import (
	"errors"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
	"github.com/MKhiriev/go-phone-notify/models"
)

type errorDetailEntry struct {
	target error
	detail *models.ErrorDetail
}

// errorDetails is checked in order; the first sentinel found in the chain
// wins, so specific field errors come before the generic ones.
var errorDetails = []errorDetailEntry{
	{validators.ErrInvalidLicenseKeyFormat, models.InvalidLicenseKeyFormat},
	{validators.ErrInvalidConferenceKeyFormat, models.InvalidConferenceKeyFormat},
	{validators.ErrInvalidQueueIDsFormat, models.InvalidQueueIDsFormat},
	{validators.ErrInvalidPhoneNumbersToDialFormat, models.InvalidPhoneNumbersToDialFormat},
	{ErrInvalidRequestBody, models.InvalidRequestBody},
	{validators.ErrInvalidRequestParameters, models.InvalidRequestParameters},
	{service.ErrInvalidDataProvided, models.InvalidRequestParameters},
	{ErrInvalidQueryParameter, models.InvalidRequestParameters},
}

// errorDetailFromError picks the body reported to the caller. Upstream
// failures carry the upstream text, everything unknown is a 500.
func errorDetailFromError(err error) *models.ErrorDetail {
	for _, entry := range errorDetails {
		if errors.Is(err, entry.target) {
			return entry.detail
		}
	}

	if adapter.IsUpstreamError(err) {
		return models.UpstreamFailure.WithMessage(adapter.Message(err))
	}

	return models.InternalServerError
}
