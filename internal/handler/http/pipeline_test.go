// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-phone-notify/internal/adapter"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Licensed JSON operations
// ─────────────────────────────────────────────

func TestPipeline_LicensedBody_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	want := models.NotifyPhoneBasicRequest{PhoneNumberToDial: "7575559999", TextToSay: "hello", VoiceID: "1"}
	mocks.notify.EXPECT().
		NotifyPhoneBasic(gomock.Any(), testLicenseKey, want).
		Return(models.NotifyReturn{QueueID: 42, ResponseText: "Queued"}, nil)

	rec := serve(t, h, http.MethodPost, "/Notify/NotifyPhoneBasic", testLicenseKey, want)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"queueID":42`)
	assert.Contains(t, rec.Body.String(), `"responseText":"Queued"`)
}

func TestPipeline_LicenseKeyRejected(t *testing.T) {
	tests := []struct {
		name       string
		licenseKey string
	}{
		{name: "missing header", licenseKey: ""},
		{name: "not a guid", licenseKey: "abc"},
		{name: "braced guid", licenseKey: "{" + testLicenseKey + "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(t, h, http.MethodPost, "/Notify/NotifyPhoneEnglishBasic", tt.licenseKey,
				models.NotifyPhoneEnglishBasicRequest{PhoneNumberToDial: "1", TextToSay: "t"})

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, *models.InvalidLicenseKeyFormat, decodeErrorDetail(t, rec))
		})
	}
}

func TestPipeline_RejectedInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   any
		want   *models.ErrorDetail
	}{
		{
			name:   "malformed json",
			target: "/Notify/NotifyPhoneBasic",
			body:   `{"phoneNumberToDial":`,
			want:   models.InvalidRequestBody,
		},
		{
			name:   "wrong json type",
			target: "/Notify/NotifyPhoneBasic",
			body:   `{"phoneNumberToDial":12}`,
			want:   models.InvalidRequestBody,
		},
		{
			name:   "missing required field",
			target: "/Notify/NotifyPhoneBasic",
			body:   models.NotifyPhoneBasicRequest{PhoneNumberToDial: "7575559999"},
			want:   models.InvalidRequestParameters,
		},
		{
			name:   "trailing delimiter in phone numbers",
			target: "/Notify/NotifyMultiplePhoneBasic",
			body:   models.NotifyMultiplePhoneBasicRequest{PhoneNumbersToDial: "7575559999;", TextToSay: "t"},
			want:   models.InvalidPhoneNumbersToDialFormat,
		},
		{
			name:   "unparseable schedule",
			target: "/Notify/NotifyPhoneAdvanced",
			body:   models.NotifyPhoneAdvancedRequest{PhoneNumberToDial: "1", TextToSay: "t", UTCScheduledDateTime: "tomorrow"},
			want:   models.InvalidRequestParameters,
		},
		{
			name:   "empty batch",
			target: "/Notify/NotifyMultiplePhoneAdvanced",
			body:   `[]`,
			want:   models.InvalidRequestParameters,
		},
		{
			name:   "invalid batch item",
			target: "/Notify/NotifyMultiplePhoneAdvanced",
			body:   models.NotifyMultiplePhoneAdvancedRequest{{PhoneNumberToDial: "1", TextToSay: "t"}, {PhoneNumberToDial: "2"}},
			want:   models.InvalidRequestParameters,
		},
		{
			name:   "bad base64 sound file",
			target: "/Sound/UploadSoundFile",
			body:   `{"fileBinary":"!!!","soundFileID":"greeting"}`,
			want:   models.InvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(t, h, http.MethodPost, tt.target, testLicenseKey, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, *tt.want, decodeErrorDetail(t, rec))
		})
	}
}

func TestPipeline_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"soundFileID":"greeting","fileBinary":"` + strings.Repeat("A", maxRequestBodySize) + `"}`
	rec := serve(t, h, http.MethodPost, "/Sound/UploadSoundFile", testLicenseKey, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, *models.InvalidRequestBody, decodeErrorDetail(t, rec))
}

func TestPipeline_BatchIsForwarded(t *testing.T) {
	h, mocks := newTestHandler(t)

	batch := models.NotifyMultiplePhoneAdvancedRequest{
		{PhoneNumberToDial: "1", TextToSay: "a"},
		{PhoneNumberToDial: "2", TextToSay: "b", UTCScheduledDateTime: "2030-01-02T03:04:05Z"},
	}
	mocks.notify.EXPECT().
		NotifyMultiplePhoneAdvanced(gomock.Any(), testLicenseKey, batch).
		Return([]models.NotifyReturn{{QueueID: 1}, {QueueID: 2}}, nil)

	rec := serve(t, h, http.MethodPost, "/Notify/NotifyMultiplePhoneAdvanced", testLicenseKey, batch)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"queueID":2`)
}

func TestPipeline_DialListAdvanced_FreeTextRetryInterval(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.listMember.EXPECT().
		DialListAdvanced(gomock.Any(), testLicenseKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.DialListAdvancedRequest) (models.DialListReturn, error) {
			assert.Equal(t, "soon", req.NextTryInSeconds)
			return models.DialListReturn{NumbersDialed: 3}, nil
		})

	rec := serve(t, h, http.MethodPost, "/ListMember/DialListAdvanced", testLicenseKey,
		models.DialListAdvancedRequest{ListID: 7, TextToSay: "hi", NextTryInSeconds: "soon"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"numbersDialed":3`)
}

// ─────────────────────────────────────────────
// Query operations
// ─────────────────────────────────────────────

func TestPipeline_LicensedQuery(t *testing.T) {
	t.Run("queue ids reach the translator verbatim", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.status.EXPECT().
			GetMultipleQueueIDStatus(gomock.Any(), testLicenseKey, models.MultipleQueueIDStatusRequest{QueueIDs: "1; 2"}).
			Return([]models.NotifyReturn{{QueueID: 1}, {QueueID: 2}}, nil)

		rec := serve(t, h, http.MethodGet, "/StatusReport/GetMultipleQueueIdStatus?queueIds=1;%202", testLicenseKey, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("malformed queue ids", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(t, h, http.MethodGet, "/StatusReport/GetMultipleQueueIdStatus?queueIds=1;", testLicenseKey, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, *models.InvalidQueueIDsFormat, decodeErrorDetail(t, rec))
	})

	t.Run("parameter names ignore case", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.sound.EXPECT().
			GetSoundFileInMP3(gomock.Any(), testLicenseKey, models.SoundFileInMP3Request{SoundFileID: "greeting", BitRate: 64}).
			Return(models.Base64Binary("ID3"), nil)

		rec := serve(t, h, http.MethodGet, "/Sound/GetSoundFileInMP3?SoundFileID=greeting&bitrate=64", testLicenseKey, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `"SUQz"`, rec.Body.String())
	})

	t.Run("boolean flag", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.script.EXPECT().
			ScriptList(gomock.Any(), testLicenseKey, models.ScriptListRequest{IncludeGlobalScripts: true}).
			Return([]string{"welcome"}, nil)

		rec := serve(t, h, http.MethodGet, "/Script/ScriptList?includeGlobalScripts=true", testLicenseKey, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["welcome"]`, rec.Body.String())
	})
}

func TestPipeline_UnlicensedQuery(t *testing.T) {
	t.Run("no license key needed", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.status.EXPECT().
			GetQueueIDStatus(gomock.Any(), models.QueueIDStatusRequest{QueueID: 77}).
			Return(models.NotifyReturn{QueueID: 77, CallComplete: true}, nil)

		rec := serve(t, h, http.MethodGet, "/StatusReport/GetQueueIDStatus?queueId=77", "", nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"callComplete":true`)
	})

	t.Run("non numeric queue id", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(t, h, http.MethodGet, "/StatusReport/GetQueueIDStatus?queueId=abc", "", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, *models.InvalidRequestParameters, decodeErrorDetail(t, rec))
	})

	t.Run("malformed conference key", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(t, h, http.MethodGet, "/Cancelling/CancelConference?conferenceKey=not-a-guid", "", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, *models.InvalidConferenceKeyFormat, decodeErrorDetail(t, rec))
	})

	t.Run("optional filter", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.info.EXPECT().
			GetAvailableIncomingNumbers(gomock.Any(), models.AvailableIncomingNumbersRequest{}).
			Return([]string{}, nil)

		rec := serve(t, h, http.MethodGet, "/IncomingNumbers/GetAvailableIncomingNumbers", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

// ─────────────────────────────────────────────
// Operations without input
// ─────────────────────────────────────────────

func TestPipeline_NoInput(t *testing.T) {
	t.Run("licensed", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.sound.EXPECT().ReturnSoundFileIDs(gomock.Any(), testLicenseKey).Return([]string{"a", "b"}, nil)

		rec := serve(t, h, http.MethodGet, "/Sound/ReturnSoundFileIDs", testLicenseKey, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["a","b"]`, rec.Body.String())
	})

	t.Run("public", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		mocks.info.EXPECT().GetVoices(gomock.Any()).Return([]models.Voice{{VoiceID: 1, VoiceName: "Diane"}}, nil)

		rec := serve(t, h, http.MethodGet, "/Info/GetVoices", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"voiceName":"Diane"`)
	})
}

// ─────────────────────────────────────────────
// Translator and upstream failures
// ─────────────────────────────────────────────

func TestPipeline_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "soap fault carries the upstream reason",
			err:        &adapter.FaultError{Action: "GetResponseCodes", Code: "soap:Receiver", Reason: "Server was unable to process request."},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Server was unable to process request.",
		},
		{
			name:       "transport failure",
			err:        fmt.Errorf("%w: GetResponseCodes: connection refused", adapter.ErrUpstreamUnavailable),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "upstream unavailable: GetResponseCodes: connection refused",
		},
		{
			name:       "translator rejected input",
			err:        fmt.Errorf("%w: bad datetime", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    models.InvalidRequestParameters.Message,
		},
		{
			name:       "unknown failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    models.InternalServerError.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)

			mocks.info.EXPECT().GetResponseCodes(gomock.Any()).Return(nil, tt.err)

			rec := serve(t, h, http.MethodGet, "/Info/GetResponseCodes", "", nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeErrorDetail(t, rec)
			assert.Equal(t, tt.wantStatus, detail.StatusCode)
			assert.Equal(t, tt.wantMsg, detail.Message)
		})
	}
}
