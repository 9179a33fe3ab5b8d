package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("upstream rejected transport credentials")
	ErrForbidden           = errors.New("upstream access forbidden")
	ErrEndpointNotFound    = errors.New("upstream endpoint not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected upstream status")
	ErrMalformedResponse   = errors.New("malformed upstream response")
	ErrUpstreamFault       = errors.New("upstream fault")
)

var upstreamErrors = []error{
	ErrUnauthorized,
	ErrForbidden,
	ErrEndpointNotFound,
	ErrUpstreamUnavailable,
	ErrUnexpectedStatus,
	ErrMalformedResponse,
	ErrUpstreamFault,
}

// IsUpstreamError reports whether err originates from the upstream call
// rather than from the caller's input or the gateway itself.
func IsUpstreamError(err error) bool {
	for _, target := range upstreamErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// FaultError is a soap:Fault returned by the upstream.
type FaultError struct {
	Action     string
	Code       string
	Reason     string
	StatusCode int
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: soap fault %s (http %d): %s", e.Action, e.Code, e.StatusCode, e.Reason)
}

func (e *FaultError) Is(target error) bool {
	return target == ErrUpstreamFault
}

// Message returns the text that should reach REST callers: the fault reason
// for a soap:Fault, the full error text otherwise.
func Message(err error) string {
	var fault *FaultError
	if errors.As(err, &fault) && fault.Reason != "" {
		return fault.Reason
	}
	return err.Error()
}
