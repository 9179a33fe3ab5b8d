package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKey = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	v, err := NewRequestValidator()
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

// ─── Single values ───────────────────────────────────────────────────────────

func TestRequestValidator_Values(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		value   string
		fields  []string
		wantErr error
	}{
		{name: "valid license key", value: validKey, fields: []string{FieldLicenseKey}},
		{name: "invalid license key", value: "abc", fields: []string{FieldLicenseKey}, wantErr: ErrInvalidLicenseKeyFormat},
		{name: "empty license key", value: "", fields: []string{FieldLicenseKey}, wantErr: ErrInvalidLicenseKeyFormat},
		{name: "invalid conference key", value: "abc", fields: []string{FieldConferenceKey}, wantErr: ErrInvalidConferenceKeyFormat},
		{name: "valid queue ids", value: "1; 2;3", fields: []string{FieldQueueIDs}},
		{name: "invalid queue ids", value: "1;", fields: []string{FieldQueueIDs}, wantErr: ErrInvalidQueueIDsFormat},
		{name: "invalid phone numbers", value: "1;;2", fields: []string{FieldPhoneNumbersToDial}, wantErr: ErrInvalidPhoneNumbersToDialFormat},
		{name: "no fields", value: validKey, wantErr: ErrUnknownField},
		{name: "unknown field", value: validKey, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─── Structs ─────────────────────────────────────────────────────────────────

func TestRequestValidator_Structs(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{
			name: "valid basic notify",
			obj:  models.NotifyPhoneBasicRequest{PhoneNumberToDial: "7575559999", TextToSay: "hello"},
		},
		{
			name: "pointer to valid request",
			obj:  &models.NotifyPhoneBasicRequest{PhoneNumberToDial: "7575559999", TextToSay: "hello"},
		},
		{
			name:    "missing required text",
			obj:     models.NotifyPhoneBasicRequest{PhoneNumberToDial: "7575559999"},
			wantErr: ErrInvalidRequestParameters,
		},
		{
			name:    "bad phone number list",
			obj:     models.NotifyMultiplePhoneBasicRequest{PhoneNumbersToDial: "1;", TextToSay: "hi"},
			wantErr: ErrInvalidPhoneNumbersToDialFormat,
		},
		{
			name:    "missing phone number list",
			obj:     models.NotifyMultiplePhoneBasicRequest{TextToSay: "hi"},
			wantErr: ErrInvalidPhoneNumbersToDialFormat,
		},
		{
			name: "valid phone number list",
			obj:  models.NotifyMultiplePhoneBasicWithCPMRequest{PhoneNumbersToDial: "1; 2", TextToSay: "hi", CallsPerMinute: 5},
		},
		{
			name:    "bad queue ids",
			obj:     models.MultipleQueueIDStatusRequest{QueueIDs: "1;a"},
			wantErr: ErrInvalidQueueIDsFormat,
		},
		{
			name: "queue ids with whitespace",
			obj:  models.MultipleQueueIDStatusRequest{QueueIDs: "1; 2"},
		},
		{
			name:    "bad conference key",
			obj:     models.CancelConferenceRequest{ConferenceKey: "{" + validKey + "}"},
			wantErr: ErrInvalidConferenceKeyFormat,
		},
		{
			name: "valid conference key",
			obj:  models.CancelConferenceRequest{ConferenceKey: validKey},
		},
		{
			name:    "zero queue id",
			obj:     models.QueueIDStatusRequest{},
			wantErr: ErrInvalidRequestParameters,
		},
		{
			name:    "unparseable schedule",
			obj:     models.NotifyPhoneAdvancedRequest{PhoneNumberToDial: "1", TextToSay: "t", UTCScheduledDateTime: "tomorrow"},
			wantErr: ErrInvalidRequestParameters,
		},
		{
			name: "naive schedule",
			obj:  models.NotifyPhoneAdvancedRequest{PhoneNumberToDial: "1", TextToSay: "t", UTCScheduledDateTime: "2030-01-02T03:04:05"},
		},
		{
			name: "empty schedule",
			obj:  models.DialListAdvancedRequest{ListID: 1, TextToSay: "t"},
		},
		{
			name:    "empty sound file",
			obj:     models.UploadSoundFileRequest{SoundFileID: "greeting"},
			wantErr: ErrInvalidRequestParameters,
		},
		{
			name:    "sound file too large",
			obj:     models.UploadSoundFileRequest{SoundFileID: "greeting", FileBinary: make(models.Base64Binary, models.MaxSoundFileSize+1)},
			wantErr: ErrInvalidRequestParameters,
		},
		{
			name: "request without rules",
			obj:  models.ScriptListRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─── Batches and unsupported input ───────────────────────────────────────────

func TestRequestValidator_Batches(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	valid := models.NotifyPhoneAdvancedRequest{PhoneNumberToDial: "7575559999", TextToSay: "hello"}

	t.Run("all items valid", func(t *testing.T) {
		err := v.Validate(ctx, models.NotifyMultiplePhoneAdvancedRequest{valid, valid})
		assert.NoError(t, err)
	})

	t.Run("one invalid item fails the batch", func(t *testing.T) {
		err := v.Validate(ctx, models.NotifyMultiplePhoneAdvancedRequest{valid, {PhoneNumberToDial: "1"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRequestParameters)
		assert.Contains(t, err.Error(), "batch item 1")
	})

	t.Run("empty batch", func(t *testing.T) {
		err := v.Validate(ctx, models.NotifyMultiplePhoneAdvancedRequest{})
		assert.ErrorIs(t, err, ErrInvalidRequestParameters)
	})
}

func TestRequestValidator_UnsupportedTypes(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	var nilReq *models.NotifyPhoneBasicRequest

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nilReq), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, map[string]string{}), ErrUnsupportedType)
}
