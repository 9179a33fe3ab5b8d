package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-phone-notify/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants select the rule applied to a plain string value.
const (
	// FieldLicenseKey validates a license key carried in the LicenseKey header.
	FieldLicenseKey = "licenseKey"

	// FieldConferenceKey validates a conference key.
	FieldConferenceKey = "conferenceKey"

	// FieldQueueIDs validates a semicolon separated list of queue IDs.
	FieldQueueIDs = "queueIDs"

	// FieldPhoneNumbersToDial validates a semicolon separated list of phone numbers.
	FieldPhoneNumbersToDial = "phoneNumbersToDial"
)

// Struct tags registered on top of the go-playground/validator built-ins.
const (
	TagIdentifier = "identifier"
	TagNumList    = "numlist"
	TagDelimList  = "delimlist"
	TagScheduled  = "scheduled"
)

// fieldErrors maps the Go field name of a failed struct field to the sentinel
// reported to callers. Any other field yields ErrInvalidRequestParameters.
var fieldErrors = map[string]error{
	"LicenseKey":         ErrInvalidLicenseKeyFormat,
	"ConferenceKey":      ErrInvalidConferenceKeyFormat,
	"QueueIDs":           ErrInvalidQueueIDsFormat,
	"PhoneNumbersToDial": ErrInvalidPhoneNumbersToDialFormat,
}

// RequestValidator validates REST request models through struct tags and
// single values through the rules in rules.go.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator with the gateway's custom tags
// registered.
func NewRequestValidator() (Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]func(string) bool{
		TagIdentifier: IsWellFormedIdentifier,
		TagNumList:    IsValidDelimitedNumericList,
		TagDelimList:  IsValidDelimitedList,
		TagScheduled:  isValidScheduledDateTime,
	}
	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, stringRule(rule)); err != nil {
			return nil, fmt.Errorf("error registering %q validation: %w", tag, err)
		}
	}

	return &RequestValidator{validate: validate}, nil
}

// Validate accepts a string (checked against the named fields), a request
// struct, or a slice of request structs. Slices must not be empty and every
// element is validated. The first failure wins.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if value, ok := obj.(string); ok {
		return v.validateValue(value, fields...)
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrUnsupportedType
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return v.validateStruct(ctx, rv.Interface())
	case reflect.Slice:
		if rv.Len() == 0 {
			return fmt.Errorf("%w: empty batch", ErrInvalidRequestParameters)
		}
		for i := range rv.Len() {
			if err := v.Validate(ctx, rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateValue(value string, fields ...string) error {
	if len(fields) == 0 {
		return ErrUnknownField
	}

	for _, f := range fields {
		switch f {
		case FieldLicenseKey:
			if !IsWellFormedIdentifier(value) {
				return ErrInvalidLicenseKeyFormat
			}
		case FieldConferenceKey:
			if !IsWellFormedIdentifier(value) {
				return ErrInvalidConferenceKeyFormat
			}
		case FieldQueueIDs:
			if !IsValidDelimitedNumericList(value) {
				return ErrInvalidQueueIDsFormat
			}
		case FieldPhoneNumbersToDial:
			if !IsValidDelimitedList(value) {
				return ErrInvalidPhoneNumbersToDialFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequestParameters, err)
	}

	fieldErr := validationErrs[0]
	sentinel, ok := fieldErrors[fieldErr.StructField()]
	if !ok {
		sentinel = ErrInvalidRequestParameters
	}

	return fmt.Errorf("%w: %s failed on %q", sentinel, fieldErr.Namespace(), fieldErr.Tag())
}

func stringRule(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return rule(field.String())
	}
}

func isValidScheduledDateTime(value string) bool {
	_, err := models.ParseDateTime(value)
	return err == nil
}
