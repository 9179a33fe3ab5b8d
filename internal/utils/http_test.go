package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type result struct {
		QueueID      int64  `json:"queueID"`
		ResponseText string `json:"responseText"`
	}

	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "upstream result",
			data:       result{QueueID: 42, ResponseText: "Queued"},
			statusCode: http.StatusOK,
			wantBody:   `{"queueID":42,"responseText":"Queued"}`,
		},
		{
			name:       "error detail status is kept",
			data:       map[string]any{"statusCode": 400, "message": "Invalid licenseKey format."},
			statusCode: http.StatusBadRequest,
			wantBody:   `{"statusCode":400,"message":"Invalid licenseKey format."}`,
		},
		{name: "empty array", data: []string{}, statusCode: http.StatusOK, wantBody: `[]`},
		{name: "nil", data: nil, statusCode: http.StatusOK, wantBody: `null`},
		{name: "boolean", data: true, statusCode: http.StatusOK, wantBody: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)

	assert.ErrorContains(t, err, "error encoding response as JSON")
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"Internal server error."}`, rec.Body.String())
}

func TestWriteBody(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteBody(rec, ContentTypeYAML, []byte("openapi: 3.0.3\n"), http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, ContentTypeYAML, rec.Header().Get("Content-Type"))
	assert.Equal(t, "openapi: 3.0.3\n", rec.Body.String())
}
