package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Content types written by the gateway.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
	ContentTypeText = "text/plain"
)

// marshalFailureBody is sent when a response value cannot be encoded. It
// matches the ErrorDetail shape so callers always receive one error format.
const marshalFailureBody = `{"statusCode":500,"message":"Internal server error."}`

// WriteJSON encodes data and writes it with statusCode. When encoding fails
// nothing of data is sent: the caller gets a 500 ErrorDetail body and the
// encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		_, _ = WriteBody(w, ContentTypeJSON, []byte(marshalFailureBody), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response as JSON: %w", err)
	}

	return WriteBody(w, ContentTypeJSON, body, statusCode)
}

// WriteBody writes an already encoded body.
func WriteBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
