package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/stretchr/testify/assert"
)

func TestErrorDetailFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *models.ErrorDetail
	}{
		{name: "license key", err: validators.ErrInvalidLicenseKeyFormat, want: models.InvalidLicenseKeyFormat},
		{name: "conference key", err: validators.ErrInvalidConferenceKeyFormat, want: models.InvalidConferenceKeyFormat},
		{name: "queue ids", err: validators.ErrInvalidQueueIDsFormat, want: models.InvalidQueueIDsFormat},
		{
			name: "wrapped phone numbers",
			err:  fmt.Errorf("batch item 0: %w", validators.ErrInvalidPhoneNumbersToDialFormat),
			want: models.InvalidPhoneNumbersToDialFormat,
		},
		{name: "parameters", err: validators.ErrInvalidRequestParameters, want: models.InvalidRequestParameters},
		{name: "translator input", err: service.ErrInvalidDataProvided, want: models.InvalidRequestParameters},
		{name: "body", err: fmt.Errorf("%w: EOF", ErrInvalidRequestBody), want: models.InvalidRequestBody},
		{name: "query", err: fmt.Errorf("%w \"queueId\"", ErrInvalidQueryParameter), want: models.InvalidRequestParameters},
		{name: "unknown", err: errors.New("boom"), want: models.InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, errorDetailFromError(tt.err))
		})
	}
}

func TestErrorDetailFromError_Upstream(t *testing.T) {
	fault := &adapter.FaultError{Action: "NotifyPhoneBasic", Code: "soap:Client", Reason: "Invalid License Key", StatusCode: 500}

	detail := errorDetailFromError(fmt.Errorf("notify: %w", fault))

	assert.Equal(t, http.StatusBadGateway, detail.StatusCode)
	assert.Equal(t, "Invalid License Key", detail.Message)
	assert.NotSame(t, models.UpstreamFailure, detail)
	assert.Equal(t, "Upstream service failure.", models.UpstreamFailure.Message)
}

func TestErrorDetailFromError_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *models.ErrorDetail
	}{
		{
			name: "license key before parameters",
			err:  errors.Join(validators.ErrInvalidRequestParameters, validators.ErrInvalidLicenseKeyFormat),
			want: models.InvalidLicenseKeyFormat,
		},
		{
			name: "queue ids before query",
			err:  errors.Join(ErrInvalidQueryParameter, validators.ErrInvalidQueueIDsFormat),
			want: models.InvalidQueueIDsFormat,
		},
		{
			name: "body before parameters",
			err:  fmt.Errorf("%w: %w", validators.ErrInvalidRequestParameters, ErrInvalidRequestBody),
			want: models.InvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				assert.Same(t, tt.want, errorDetailFromError(tt.err))
			}
		})
	}
}
