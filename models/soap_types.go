package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UpstreamNamespace is the XML namespace of every PhoneNotify SOAP element.
const UpstreamNamespace = "http://ws.cdyne.com/NotifyWS/"

const (
	soapTimeLayout  = "2006-01-02T15:04:05.9999999Z07:00"
	naiveTimeLayout = "2006-01-02T15:04:05"
	minSoapTime     = "0001-01-01T00:00:00"
)

// ParseDateTime parses a scheduled datetime supplied by REST callers.
// RFC 3339 values are converted to UTC, values without an offset are taken
// as UTC already. Fractional seconds are accepted in both forms.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(naiveTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: %w", value, err)
	}

	return t, nil
}

// SoapTime is an xsd:dateTime value. It marshals in UTC and tolerates the
// zone-less timestamps the upstream emits in responses.
type SoapTime struct {
	time.Time
}

// NewSoapTime wraps t, normalised to UTC.
func NewSoapTime(t time.Time) SoapTime {
	return SoapTime{Time: t.UTC()}
}

func (s SoapTime) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return []byte(minSoapTime), nil
	}

	return []byte(s.UTC().Format(soapTimeLayout)), nil
}

func (s *SoapTime) UnmarshalText(text []byte) error {
	value := strings.TrimSpace(string(text))
	if value == "" || value == minSoapTime {
		s.Time = time.Time{}
		return nil
	}

	t, err := ParseDateTime(value)
	if err != nil {
		return err
	}

	s.Time = t
	return nil
}

// MarshalJSON overrides the promoted time.Time encoder so JSON and XML share
// one representation.
func (s SoapTime) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (s *SoapTime) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("invalid datetime: %w", err)
	}
	return s.UnmarshalText([]byte(text))
}

// Base64Binary is an opaque xsd:base64Binary blob. Both the XML and the JSON
// representation are standard base64 text.
type Base64Binary []byte

func (b Base64Binary) MarshalText() ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out, nil
}

func (b *Base64Binary) UnmarshalText(text []byte) error {
	cleaned := strings.Join(strings.Fields(string(text)), "")
	if cleaned == "" {
		*b = nil
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid base64 payload: %w", err)
	}

	*b = decoded
	return nil
}
