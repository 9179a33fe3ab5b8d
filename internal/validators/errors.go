package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLicenseKeyFormat         = errors.New("invalid license key format")
	ErrInvalidConferenceKeyFormat      = errors.New("invalid conference key format")
	ErrInvalidQueueIDsFormat           = errors.New("invalid queue IDs format")
	ErrInvalidPhoneNumbersToDialFormat = errors.New("invalid phone numbers to dial format")
	ErrInvalidRequestParameters        = errors.New("invalid request parameters")
)
