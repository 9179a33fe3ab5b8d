package http

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/utils"
	"github.com/MKhiriev/go-phone-notify/internal/validators"
	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

const (
	openAPIJSONPath = "/swagger/v2/swagger.json"
	openAPIYAMLPath = "/swagger/v2/swagger.yaml"

	openAPITitle       = "PhoneNotify"
	openAPIDescription = "REST gateway over the CDYNE PhoneNotify SOAP service."

	errorDetailRef = "#/components/schemas/ErrorDetail"
)

var (
	base64BinaryType = reflect.TypeFor[models.Base64Binary]()
	soapTimeType     = reflect.TypeFor[models.SoapTime]()
)

func (h *Handler) getOpenAPIJSON(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := buildOpenAPI(router, h.services.AppInfoService.GetAppVersion(r.Context()))
		if err != nil {
			writeError(w, r, "OpenAPI", err)
			return
		}

		if _, err = utils.WriteJSON(w, doc, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing OpenAPI document")
		}
	}
}

func (h *Handler) getOpenAPIYAML(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := buildOpenAPI(router, h.services.AppInfoService.GetAppVersion(r.Context()))
		if err != nil {
			writeError(w, r, "OpenAPI", err)
			return
		}

		out, err := yaml.Marshal(doc)
		if err != nil {
			writeError(w, r, "OpenAPI", fmt.Errorf("error marshalling OpenAPI document to YAML: %w", err))
			return
		}

		if _, err = utils.WriteBody(w, utils.ContentTypeYAML, out, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing OpenAPI document")
		}
	}
}

// buildOpenAPI documents every pipeline endpoint registered on routes.
// Plain handlers such as /version are left out.
func buildOpenAPI(routes chi.Routes, version string) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       openAPITitle,
			Version:     version,
			Description: openAPIDescription,
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"ErrorDetail": {Value: errorDetailSchema()},
			},
		},
	}

	err := chi.Walk(routes, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		ep, ok := handler.(endpoint)
		if !ok {
			return nil
		}

		item := doc.Paths.Value(route)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(route, item)
		}
		item.SetOperation(method, newOpenAPIOperation(route, ep.doc))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking routes: %w", err)
	}

	return doc, nil
}

func newOpenAPIOperation(route string, doc operationDoc) *openapi3.Operation {
	op := &openapi3.Operation{
		OperationID: doc.name,
		Tags:        []string{routeGroup(route)},
		Responses:   &openapi3.Responses{},
	}

	if doc.licensed {
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:        licenseKeyHeader,
				In:          openapi3.ParameterInHeader,
				Description: "PhoneNotify license key",
				Required:    true,
				Schema:      stringSchema("uuid"),
			},
		})
	}

	switch doc.source {
	case fromQuery:
		op.Parameters = append(op.Parameters, queryParameters(doc.request)...)
	case fromBody:
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content:  openapi3.NewContentWithJSONSchemaRef(schemaFor(doc.request)),
			},
		}
	}

	op.Responses.Set("200", jsonResponse("Upstream result", schemaFor(doc.response)))
	op.Responses.Set("400", jsonResponse("Rejected before the upstream call", errorDetailRefSchema()))
	op.Responses.Set("500", jsonResponse("Internal server error", errorDetailRefSchema()))
	op.Responses.Set("502", jsonResponse("Upstream fault or transport failure", errorDetailRefSchema()))

	return op
}

// routeGroup returns the first path segment, "/Notify/NotifyPhoneBasic"
// belongs to "Notify".
func routeGroup(route string) string {
	group, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	return group
}

func queryParameters(t reflect.Type) openapi3.Parameters {
	var params openapi3.Parameters
	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("query")
		if name == "" || !field.IsExported() {
			continue
		}

		schema, required := fieldSchema(field)
		params = append(params, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:     name,
				In:       openapi3.ParameterInQuery,
				Required: required,
				Schema:   schema,
			},
		})
	}
	return params
}

// schemaFor derives a JSON schema from a request or result type. Adapted to
// the gateway's own scalar types: Base64Binary is a base64 string and
// SoapTime a date-time.
func schemaFor(t reflect.Type) *openapi3.SchemaRef {
	switch t {
	case base64BinaryType:
		return stringSchema("byte")
	case soapTimeType:
		return stringSchema("date-time")
	}

	schema := &openapi3.Schema{}

	switch t.Kind() {
	case reflect.String:
		schema.Type = &openapi3.Types{openapi3.TypeString}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		schema.Type = &openapi3.Types{openapi3.TypeInteger}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema.Type = &openapi3.Types{openapi3.TypeInteger}
		schema.Min = float64Ptr(0)
	case reflect.Float32, reflect.Float64:
		schema.Type = &openapi3.Types{openapi3.TypeNumber}
	case reflect.Bool:
		schema.Type = &openapi3.Types{openapi3.TypeBoolean}
	case reflect.Slice, reflect.Array:
		schema.Type = &openapi3.Types{openapi3.TypeArray}
		schema.Items = schemaFor(t.Elem())
	case reflect.Pointer:
		return schemaFor(t.Elem())
	case reflect.Struct:
		schema.Type = &openapi3.Types{openapi3.TypeObject}
		schema.Properties = make(openapi3.Schemas)

		for i := range t.NumField() {
			field := t.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" || !field.IsExported() {
				continue
			}

			fieldRef, required := fieldSchema(field)
			schema.Properties[name] = fieldRef
			if required {
				schema.Required = append(schema.Required, name)
			}
		}
	}

	return &openapi3.SchemaRef{Value: schema}
}

// fieldSchema applies the field's validate tag to its schema and reports
// whether the field must be present.
func fieldSchema(field reflect.StructField) (*openapi3.SchemaRef, bool) {
	ref := schemaFor(field.Type)
	schema := ref.Value
	required := false

	for rule := range strings.SplitSeq(field.Tag.Get("validate"), ",") {
		name, param, _ := strings.Cut(strings.TrimSpace(rule), "=")
		switch name {
		case "required":
			required = true
		case validators.TagIdentifier:
			schema.Format = "uuid"
		case validators.TagNumList:
			schema.Pattern = validators.NumericListPattern
		case validators.TagDelimList:
			schema.Pattern = validators.DelimitedListPattern
		case validators.TagScheduled:
			schema.Description = "RFC 3339, or UTC when no offset is given"
		case "gt":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				schema.Min = float64Ptr(v + 1)
				required = true
			}
		case "gte":
			if v, err := strconv.ParseFloat(param, 64); err == nil {
				schema.Min = float64Ptr(v)
			}
		}
	}

	return ref, required
}

func errorDetailSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			"statusCode": {Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeInteger}}},
			"message":    {Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}},
		},
		Required: []string{"statusCode", "message"},
	}
}

func errorDetailRefSchema() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef(errorDetailRef, errorDetailSchema())
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content:     openapi3.NewContentWithJSONSchemaRef(schema),
		},
	}
}

func stringSchema(format string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:   &openapi3.Types{openapi3.TypeString},
			Format: format,
		},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
