package http

import (
	"bytes"
	"context"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/MKhiriev/go-phone-notify/internal/utils"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	h, _ := newTestHandler(t)

	var got []string
	err := chi.Walk(h.Init(), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	want := []string{
		"GET /version",
		"GET /swagger/v2/swagger.json",
		"GET /swagger/v2/swagger.yaml",

		"POST /Notify/NotifyPhoneBasic",
		"POST /Notify/NotifyPhoneBasicWithTryCount",
		"POST /Notify/NotifyPhoneBasicWithTransfer",
		"POST /Notify/NotifyPhoneEnglishBasic",
		"POST /Notify/NotifyMultiplePhoneBasic",
		"POST /Notify/NotifyMultiplePhoneBasicWithCPM",
		"POST /Notify/NotifyMultiplePhoneBasicWithCPMandReferenceID",
		"POST /Notify/NotifyPhoneAdvanced",
		"POST /Notify/NotifyMultiplePhoneAdvanced",

		"GET /StatusReport/GetQueueIDStatus",
		"GET /StatusReport/GetQueueIDStatusWithAdvancedInfo",
		"GET /StatusReport/GetQueueIDStatusesByPhoneNumber",
		"GET /StatusReport/GetMultipleQueueIdStatus",

		"GET /Cancelling/CancelNotify",
		"GET /Cancelling/CancelNotifyByReferenceID",
		"GET /Cancelling/CancelConference",

		"POST /ListMember/AddNewList",
		"PATCH /ListMember/AlterListID",
		"DELETE /ListMember/DeleteList",
		"POST /ListMember/DialList",
		"POST /ListMember/DialListAdvanced",
		"GET /ListMember/GetListIDsByLicensekey",
		"POST /ListMember/AddListMember",
		"PATCH /ListMember/AlterListMember",
		"DELETE /ListMember/DeleteListMember",
		"GET /ListMember/GetListMembersByListID",

		"POST /Sound/UploadSoundFile",
		"GET /Sound/GetSoundFile",
		"GET /Sound/GetSoundFileInMP3",
		"GET /Sound/GetSoundFileInUlaw",
		"GET /Sound/GetSoundFileLength",
		"GET /Sound/GetSoundFileURL",
		"POST /Sound/GetTTSInMP3",
		"POST /Sound/GetTTSInULAW",
		"POST /Sound/RecordSoundViaPhoneCall",
		"DELETE /Sound/RemoveSoundFile",
		"PATCH /Sound/RenameSoundFile",
		"GET /Sound/ReturnSoundFileIDs",

		"POST /Script/SetIncomingCallScript",
		"GET /Script/GetIncomingCallScript",
		"POST /Script/ScriptSave",
		"GET /Script/ScriptLoad",
		"GET /Script/ScriptList",
		"DELETE /Script/ScriptDelete",

		"POST /License/AssignIncomingNumber",
		"GET /License/GetAssignedNumbers",

		"GET /Info/GetAvailableAreaCodes",
		"GET /Info/GetResponseCodes",
		"GET /Info/GetVersion",
		"GET /Info/GetVoices",

		"GET /IncomingNumbers/GetAvailableIncomingNumbers",
	}

	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestInit_UnknownRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/Notify/DoesNotExist"},
		{name: "unknown group", method: http.MethodGet, target: "/Billing/Charge"},
		{name: "wrong method on operation", method: http.MethodGet, target: "/Notify/NotifyPhoneBasic"},
		{name: "wrong method on version", method: http.MethodPost, target: "/version"},
		{name: "delete on query operation", method: http.MethodDelete, target: "/Info/GetVoices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(t, h, tt.method, tt.target, testLicenseKey, nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestCheckHTTPMethod(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(method, "/Sound/RenameSoundFile", nil)
			req.Header.Set(licenseKeyHeader, testLicenseKey)

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}

	t.Run("direct call answers 404", func(t *testing.T) {
		rec := httptest.NewRecorder()

		CheckHTTPMethod(rec, httptest.NewRequest(http.MethodPost, "/version", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	t.Run("issued when missing", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.info.EXPECT().GetVersion(gomock.Any()).Return("1.0", nil)

		rec := serve(t, h, http.MethodGet, "/Info/GetVersion", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(utils.TraceIDHeader))
	})

	t.Run("caller id is echoed and reaches the translator", func(t *testing.T) {
		h, mocks := newTestHandler(t)

		var seen string
		mocks.info.EXPECT().GetAvailableAreaCodes(gomock.Any()).DoAndReturn(
			func(ctx context.Context) ([]models.AreaCode, error) {
				seen, _ = utils.GetTraceIDFromContext(ctx)
				return []models.AreaCode{}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/Info/GetAvailableAreaCodes", nil)
		req.Header.Set(utils.TraceIDHeader, "trace-123")
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-123", rec.Header().Get(utils.TraceIDHeader))
		assert.Equal(t, "trace-123", seen)
	})
}

func TestWithGZip(t *testing.T) {
	t.Run("compressed response", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.info.EXPECT().GetVoices(gomock.Any()).Return([]models.Voice{{VoiceID: 2, VoiceName: "Paul"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/Info/GetVoices", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"voiceName":"Paul"`)
	})

	t.Run("compressed request body", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.script.EXPECT().
			ScriptSave(gomock.Any(), testLicenseKey, models.ScriptSaveRequest{ScriptName: "welcome", ScriptText: "<Say>hi</Say>"}).
			Return(true, nil)

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(`{"scriptName":"welcome","scriptText":"<Say>hi</Say>"}`))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/Script/ScriptSave", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set(licenseKeyHeader, testLicenseKey)
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "true", rec.Body.String())
	})

	t.Run("corrupt request body", func(t *testing.T) {
		h, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/Script/ScriptSave", bytes.NewBufferString("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set(licenseKeyHeader, testLicenseKey)
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, *models.InvalidRequestBody, decodeErrorDetail(t, rec))
	})
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	implicit := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = implicit.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, implicit.status)
}
