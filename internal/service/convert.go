package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-phone-notify/models"
)

// DefaultRetryIntervalSeconds replaces retry intervals that are not 16-bit
// integers.
const DefaultRetryIntervalSeconds int16 = 60

// ParseShortOrDefault parses s as a signed 16-bit integer. Anything else,
// including an empty string, yields DefaultRetryIntervalSeconds.
func ParseShortOrDefault(s string) int16 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return DefaultRetryIntervalSeconds
	}
	return int16(v)
}

// parseScheduled converts a REST scheduled datetime to its upstream form.
// An empty value leaves the call unscheduled.
func parseScheduled(value string) (models.SoapTime, error) {
	if strings.TrimSpace(value) == "" {
		return models.NewSoapTime(time.Time{}), nil
	}

	t, err := models.ParseDateTime(value)
	if err != nil {
		return models.SoapTime{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return models.NewSoapTime(t), nil
}
