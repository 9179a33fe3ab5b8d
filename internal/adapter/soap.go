package adapter

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	soapEnvelopeNamespace = "http://www.w3.org/2003/05/soap-envelope"
	xsiNamespace          = "http://www.w3.org/2001/XMLSchema-instance"
	xsdNamespace          = "http://www.w3.org/2001/XMLSchema"
)

type requestEnvelope struct {
	XMLName xml.Name    `xml:"soap12:Envelope"`
	XSI     string      `xml:"xmlns:xsi,attr"`
	XSD     string      `xml:"xmlns:xsd,attr"`
	SOAP    string      `xml:"xmlns:soap12,attr"`
	Body    requestBody `xml:"soap12:Body"`
}

// requestBody holds one payload from models. The payload's XMLName supplies
// the namespaced operation element.
type requestBody struct {
	Payload any
}

func newRequestEnvelope(payload any) requestEnvelope {
	return requestEnvelope{
		XSI:  xsiNamespace,
		XSD:  xsdNamespace,
		SOAP: soapEnvelopeNamespace,
		Body: requestBody{Payload: payload},
	}
}

type responseEnvelope[T any] struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault    *soapFault       `xml:"Fault"`
		Response *responseBody[T] `xml:",any"`
	} `xml:"Body"`
}

// responseBody is the <ActionResponse> element. Its only child is
// <ActionResult>, whatever the action is called.
type responseBody[T any] struct {
	Result T `xml:",any"`
}

// soapArray decodes an ArrayOfX result. Every child element is one item.
type soapArray[T any] struct {
	Items []T `xml:",any"`
}

// soapFault understands both the SOAP 1.2 layout and the 1.1 one some
// gateways in front of the service still emit.
type soapFault struct {
	Code struct {
		Value string `xml:"Value"`
	} `xml:"Code"`
	Reason struct {
		Text string `xml:"Text"`
	} `xml:"Reason"`

	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
}

func (f *soapFault) toError(action string, statusCode int) *FaultError {
	code := strings.TrimSpace(f.Code.Value)
	if code == "" {
		code = strings.TrimSpace(f.FaultCode)
	}
	reason := strings.TrimSpace(f.Reason.Text)
	if reason == "" {
		reason = strings.TrimSpace(f.FaultString)
	}

	return &FaultError{
		Action:     action,
		Code:       code,
		Reason:     reason,
		StatusCode: statusCode,
	}
}

func contentType(action string) string {
	return fmt.Sprintf(`application/soap+xml; charset=utf-8; action="%s%s"`, models.UpstreamNamespace, action)
}

// call posts payload as the SOAP action and decodes <ActionResult> into T.
// A fault wins over the HTTP status, the status wins over decoding errors.
func call[T any](ctx context.Context, a *soapAdapter, action string, payload any) (T, error) {
	var zero T

	body, err := xml.Marshal(newRequestEnvelope(payload))
	if err != nil {
		return zero, fmt.Errorf("error marshalling %s request: %w", action, err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType(action)).
		SetBody(append([]byte(xml.Header), body...)).
		Post(a.endpoint)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, action, err)
	}

	logger.FromContextOr(ctx, a.logger).WithAction(action).Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("upstream call finished")

	var envelope responseEnvelope[T]
	decodeErr := xml.Unmarshal(resp.Body(), &envelope)

	if decodeErr == nil && envelope.Body.Fault != nil {
		return zero, envelope.Body.Fault.toError(action, resp.StatusCode())
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, fmt.Errorf("%s: %w", action, err)
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, action, decodeErr)
	}
	if envelope.Body.Response == nil {
		return zero, fmt.Errorf("%w: %s: empty soap body", ErrMalformedResponse, action)
	}

	return envelope.Body.Response.Result, nil
}

// callArray is call for operations returning ArrayOfX. An absent or empty
// array decodes to an empty, non-nil slice.
func callArray[T any](ctx context.Context, a *soapAdapter, action string, payload any) ([]T, error) {
	result, err := call[soapArray[T]](ctx, a, action, payload)
	if err != nil {
		return nil, err
	}
	if result.Items == nil {
		return []T{}, nil
	}
	return result.Items, nil
}
