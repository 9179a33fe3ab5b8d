package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request made through it forwards the trace ID found in the request
// context as the X-Trace-ID header, so upstream calls can be matched with the
// inbound request that caused them.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own configuration,
// connection pool and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
