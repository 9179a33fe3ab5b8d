// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLicenseKey = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

// newTestAdapter builds a soapAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *soapAdapter {
	t.Helper()
	cfg := config.Upstream{Endpoint: serverURL, Username: "soap-user", Password: "soap-pass"}

	a, err := NewSOAPAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*soapAdapter)
}

// soapResponse wraps inner into <actionResponse><actionResult>.
func soapResponse(action, inner string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <%[1]sResponse xmlns="http://ws.cdyne.com/NotifyWS/">
      <%[1]sResult>%[2]s</%[1]sResult>
    </%[1]sResponse>
  </soap:Body>
</soap:Envelope>`, action, inner)
}

const soapFault12 = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <soap:Fault>
      <soap:Code><soap:Value>soap:Receiver</soap:Value></soap:Code>
      <soap:Reason><soap:Text xml:lang="en">Server was unable to process request. ---&gt; Invalid License Key</soap:Text></soap:Reason>
      <soap:Detail />
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

const notifyReturnXML = `
<ResponseCode>0</ResponseCode>
<ResponseText>Queued</ResponseText>
<CallAnswered>false</CallAnswered>
<QueueID>123456</QueueID>
<TryCount>0</TryCount>
<Demo>true</Demo>
<StartTime>2024-06-01T10:20:30</StartTime>
<EndTime>0001-01-01T00:00:00</EndTime>
<CostPerMinute>0.05</CostPerMinute>
<Variables><Variable><Name>Digit</Name><Value>1</Value></Variable></Variables>`

// soapServer replies with body and status, handing every request to inspect.
func soapServer(t *testing.T, status int, body string, inspect func(r *http.Request, payload string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if inspect != nil {
			inspect(r, string(payload))
		}
		w.Header().Set("Content-Type", "application/soap+xml; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewSOAPAdapter_RequiresEndpoint(t *testing.T) {
	a, err := NewSOAPAdapter(config.Upstream{}, logger.Nop())
	assert.Nil(t, a)
	assert.Error(t, err)
}

// ── Request envelope ────────────────────────────────────────────────────────

func TestCall_RequestEnvelope(t *testing.T) {
	srv := soapServer(t, http.StatusOK, soapResponse("NotifyPhoneBasic", notifyReturnXML), func(r *http.Request, payload string) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t,
			`application/soap+xml; charset=utf-8; action="http://ws.cdyne.com/NotifyWS/NotifyPhoneBasic"`,
			r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "soap-user", user)
		assert.Equal(t, "soap-pass", pass)

		assert.Contains(t, payload, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, payload, `<soap12:Envelope`)
		assert.Contains(t, payload, `xmlns:soap12="http://www.w3.org/2003/05/soap-envelope"`)
		assert.Contains(t, payload, `<soap12:Body><NotifyPhoneBasic xmlns="http://ws.cdyne.com/NotifyWS/">`)
		assert.Contains(t, payload, `<PhoneNumberToDial>7575559999</PhoneNumberToDial>`)
		assert.Contains(t, payload, `<CallerIDname>Acme</CallerIDname>`)
		assert.Contains(t, payload, `<LicenseKey>`+testLicenseKey+`</LicenseKey>`)
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.NotifyPhoneBasic(context.Background(), models.NotifyPhoneBasic{
		PhoneNumberToDial: "7575559999",
		TextToSay:         "hello",
		CallerIDName:      "Acme",
		LicenseKey:        testLicenseKey,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(123456), got.QueueID)
	assert.Equal(t, "Queued", got.ResponseText)
	assert.True(t, got.Demo)
	assert.Equal(t, 0.05, got.CostPerMinute)
	assert.True(t, time.Date(2024, 6, 1, 10, 20, 30, 0, time.UTC).Equal(got.StartTime.Time))
	assert.True(t, got.EndTime.IsZero())
	assert.Equal(t, []models.Variable{{Name: "Digit", Value: "1"}}, got.Variables)
}

func TestCall_NoBasicAuthWithoutUsername(t *testing.T) {
	srv := soapServer(t, http.StatusOK, soapResponse("GetVersion", "4.0"), func(r *http.Request, _ string) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
	})

	a, err := NewSOAPAdapter(config.Upstream{Endpoint: srv.URL}, logger.Nop())
	require.NoError(t, err)

	got, err := a.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.0", got)
}

func TestCall_UnlicensedOperation(t *testing.T) {
	srv := soapServer(t, http.StatusOK, soapResponse("GetQueueIDStatus", notifyReturnXML), func(r *http.Request, payload string) {
		assert.Contains(t, r.Header.Get("Content-Type"), `action="http://ws.cdyne.com/NotifyWS/GetQueueIDStatus"`)
		assert.Contains(t, payload, `<QueueID>123456</QueueID>`)
		assert.NotContains(t, payload, `LicenseKey`)
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetQueueIDStatus(context.Background(), models.GetQueueIDStatus{QueueID: 123456})

	require.NoError(t, err)
	assert.Equal(t, int64(123456), got.QueueID)
}

func TestCall_DialListAdvancedEnvelope(t *testing.T) {
	result := `<ResponseCode>0</ResponseCode><NumbersDialed>2</NumbersDialed><QueueIDs><long>7</long><long>8</long></QueueIDs>`
	srv := soapServer(t, http.StatusOK, soapResponse("LM_DialListAdvanced", result), func(r *http.Request, payload string) {
		assert.Contains(t, r.Header.Get("Content-Type"), `action="http://ws.cdyne.com/NotifyWS/LM_DialListAdvanced"`)
		assert.Contains(t, payload, `<LM_DialListAdvanced xmlns="http://ws.cdyne.com/NotifyWS/"><LMF>`)
		assert.Contains(t, payload, `<NextTryInSeconds>60</NextTryInSeconds>`)
		assert.Contains(t, payload, `<ScheduledUTCDatetime>0001-01-01T00:00:00</ScheduledUTCDatetime>`)
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.DialListAdvanced(context.Background(), models.DialListAdvanced{
		Functions: models.ListDialFunctions{LicenseKey: testLicenseKey, ListID: 3, NextTryInSeconds: 60},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, got.NumbersDialed)
	assert.Equal(t, []int64{7, 8}, got.QueueIDs)
}

func TestCall_MultipleAdvancedEnvelope(t *testing.T) {
	srv := soapServer(t, http.StatusOK, soapResponse("NotifyMultiplePhoneAdvanced", ""), func(_ *http.Request, payload string) {
		assert.Contains(t, payload, `<anrs><AdvancedNotifyRequest><PhoneNumberToDial>1</PhoneNumberToDial>`)
		assert.Contains(t, payload, `<UTCScheduledDateTime>2030-01-02T03:04:05Z</UTCScheduledDateTime>`)
	})

	a := newTestAdapter(t, srv.URL)
	got, err := a.NotifyMultiplePhoneAdvanced(context.Background(), models.NotifyMultiplePhoneAdvanced{
		Requests: []models.AdvancedNotifyRequest{
			{PhoneNumberToDial: "1", UTCScheduledDateTime: models.NewSoapTime(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC))},
			{PhoneNumberToDial: "2"},
		},
	})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ── Result decoding ─────────────────────────────────────────────────────────

func TestCall_DecodesArrays(t *testing.T) {
	t.Run("notify returns", func(t *testing.T) {
		inner := `<NotifyReturn><QueueID>1</QueueID></NotifyReturn><NotifyReturn><QueueID>2</QueueID></NotifyReturn>`
		srv := soapServer(t, http.StatusOK, soapResponse("NotifyMultiplePhoneBasic", inner), nil)

		got, err := newTestAdapter(t, srv.URL).NotifyMultiplePhoneBasic(context.Background(), models.NotifyMultiplePhoneBasic{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].QueueID)
		assert.Equal(t, int64(2), got[1].QueueID)
	})

	t.Run("strings", func(t *testing.T) {
		inner := `<string>greeting</string><string>goodbye</string>`
		srv := soapServer(t, http.StatusOK, soapResponse("ReturnSoundFileIDs", inner), nil)

		got, err := newTestAdapter(t, srv.URL).ReturnSoundFileIDs(context.Background(), models.ReturnSoundFileIDs{})
		require.NoError(t, err)
		assert.Equal(t, []string{"greeting", "goodbye"}, got)
	})

	t.Run("voices", func(t *testing.T) {
		inner := `<Voice><VoiceID>1</VoiceID><VoiceName>Diane</VoiceName><VoiceGender>Female</VoiceGender></Voice>`
		srv := soapServer(t, http.StatusOK, soapResponse("getVoices", inner), func(r *http.Request, payload string) {
			assert.Contains(t, r.Header.Get("Content-Type"), `action="http://ws.cdyne.com/NotifyWS/getVoices"`)
			assert.Contains(t, payload, `<getVoices xmlns="http://ws.cdyne.com/NotifyWS/"></getVoices>`)
		})

		got, err := newTestAdapter(t, srv.URL).GetVoices(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []models.Voice{{VoiceID: 1, VoiceName: "Diane", VoiceGender: "Female"}}, got)
	})

	t.Run("empty array", func(t *testing.T) {
		srv := soapServer(t, http.StatusOK, soapResponse("ScriptList", ""), nil)

		got, err := newTestAdapter(t, srv.URL).ScriptList(context.Background(), models.ScriptList{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCall_DecodesScalars(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		srv := soapServer(t, http.StatusOK, soapResponse("CancelNotify", "true"), nil)

		got, err := newTestAdapter(t, srv.URL).CancelNotify(context.Background(), models.CancelNotify{QueueID: 1})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("int", func(t *testing.T) {
		srv := soapServer(t, http.StatusOK, soapResponse("CancelNotifyByReferenceID", "3"), nil)

		got, err := newTestAdapter(t, srv.URL).CancelNotifyByReferenceID(context.Background(), models.CancelNotifyByReferenceID{ReferenceID: "r"})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("float", func(t *testing.T) {
		srv := soapServer(t, http.StatusOK, soapResponse("GetSoundFileLength", "12.5"), nil)

		got, err := newTestAdapter(t, srv.URL).GetSoundFileLength(context.Background(), models.GetSoundFileLength{SoundFileID: "a"})
		require.NoError(t, err)
		assert.Equal(t, 12.5, got)
	})

	t.Run("base64", func(t *testing.T) {
		srv := soapServer(t, http.StatusOK, soapResponse("GetSoundFile", "UklGRg=="), nil)

		got, err := newTestAdapter(t, srv.URL).GetSoundFile(context.Background(), models.GetSoundFile{SoundFileID: "a"})
		require.NoError(t, err)
		assert.Equal(t, models.Base64Binary("RIFF"), got)
	})

	t.Run("list info", func(t *testing.T) {
		inner := `<ListID>5</ListID><ListName>Staff</ListName><ParentListID>0</ParentListID>`
		srv := soapServer(t, http.StatusOK, soapResponse("LM_AddNewList", inner), nil)

		got, err := newTestAdapter(t, srv.URL).AddNewList(context.Background(), models.AddNewList{ListName: "Staff"})
		require.NoError(t, err)
		assert.Equal(t, models.ListInfo{ListID: 5, ListName: "Staff"}, got)
	})
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestCall_SoapFault(t *testing.T) {
	srv := soapServer(t, http.StatusInternalServerError, soapFault12, nil)

	_, err := newTestAdapter(t, srv.URL).NotifyPhoneBasic(context.Background(), models.NotifyPhoneBasic{})

	require.Error(t, err)
	var fault *FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "NotifyPhoneBasic", fault.Action)
	assert.Equal(t, "soap:Receiver", fault.Code)
	assert.Equal(t, http.StatusInternalServerError, fault.StatusCode)
	assert.Equal(t, "Server was unable to process request. ---> Invalid License Key", fault.Reason)

	assert.ErrorIs(t, err, ErrUpstreamFault)
	assert.True(t, IsUpstreamError(err))
	assert.Equal(t, fault.Reason, Message(err))
}

func TestCall_Soap11Fault(t *testing.T) {
	body := `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><soap:Fault>` +
		`<faultcode>soap:Client</faultcode><faultstring>Bad request</faultstring></soap:Fault></soap:Body></soap:Envelope>`
	srv := soapServer(t, http.StatusInternalServerError, body, nil)

	_, err := newTestAdapter(t, srv.URL).GetVersion(context.Background())

	var fault *FaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "soap:Client", fault.Code)
	assert.Equal(t, "Bad request", fault.Reason)
}

func TestCall_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: "denied", wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: "<html>404</html>", wantErr: ErrEndpointNotFound},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantErr: ErrUpstreamUnavailable},
		{name: "internal error without fault", status: http.StatusInternalServerError, body: "boom", wantErr: ErrUpstreamUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
		{name: "garbage with ok status", status: http.StatusOK, body: "not xml at all", wantErr: ErrMalformedResponse},
		{name: "empty body with ok status", status: http.StatusOK, body: "", wantErr: ErrMalformedResponse},
		{
			name:    "envelope without response",
			status:  http.StatusOK,
			body:    `<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope"><soap:Body/></soap:Envelope>`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := soapServer(t, tt.status, tt.body, nil)

			_, err := newTestAdapter(t, srv.URL).GetResponseCodes(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsUpstreamError(err))
			assert.Contains(t, err.Error(), "GetResponseCodes")
		})
	}
}

func TestCall_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetAvailableAreaCodes(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCall_ContextCanceled(t *testing.T) {
	srv := soapServer(t, http.StatusOK, soapResponse("GetVersion", "4.0"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).GetVersion(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestIsUpstreamError_Foreign(t *testing.T) {
	assert.False(t, IsUpstreamError(assert.AnError))
	assert.False(t, IsUpstreamError(nil))
	assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))
}
