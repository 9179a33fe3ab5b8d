package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// maxRequestBodySize fits a base64 encoded sound file of the largest
// accepted size plus the surrounding JSON.
const maxRequestBodySize = 4 << 20

// binder fills dst, a pointer to a request model, from r.
type binder func(r *http.Request, dst any) error

func bindJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// bindQuery copies URL query parameters into the fields tagged with
// `query:"name"`. Missing parameters leave the field at its zero value.
func bindQuery(r *http.Request, dst any) error {
	values, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		return err
	}
	return decodeQuery(values, dst)
}

// parseQuery splits on '&' only. Semicolons are list delimiters inside
// values such as queueIds=1;2 and url.ParseQuery would drop those pairs.
func parseQuery(rawQuery string) (url.Values, error) {
	values := make(url.Values)
	for pair := range strings.SplitSeq(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidQueryParameter, err)
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidQueryParameter, key, err)
		}
		values.Add(key, value)
	}
	return values, nil
}

func decodeQuery(values url.Values, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedBindingTarget, dst)
	}

	target := rv.Elem()
	targetType := target.Type()

	for i := range targetType.NumField() {
		field := targetType.Field(i)
		name := field.Tag.Get("query")
		if name == "" || !field.IsExported() {
			continue
		}

		raw, ok := lookupQuery(values, name)
		if !ok {
			continue
		}

		if err := setField(target.Field(i), raw); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidQueryParameter, name, err)
		}
	}

	return nil
}

// lookupQuery matches the parameter name exactly first and then without
// regard to case, so "queueId" and "QueueID" select the same field.
func lookupQuery(values url.Values, name string) (string, bool) {
	if v, ok := values[name]; ok && len(v) > 0 {
		return v[0], true
	}
	for key, v := range values {
		if len(v) > 0 && strings.EqualFold(key, name) {
			return v[0], true
		}
	}
	return "", false
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(v)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(v)
	default:
		return fmt.Errorf("%w: kind %s", ErrUnsupportedBindingTarget, field.Kind())
	}
	return nil
}
