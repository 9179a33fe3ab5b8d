package validators

import (
	"regexp"

	"github.com/google/uuid"
)

const canonicalIdentifierLength = 36

// List grammars, also published as OpenAPI patterns.
const (
	// NumericListPattern forbids a trailing delimiter and allows whitespace
	// after each semicolon.
	NumericListPattern = `^\d+(;\s*\d+)*$`

	DelimitedListPattern = `^[^;\s][^;]*(;\s*[^;\s][^;]*)*$`
)

var (
	numericListPattern   = regexp.MustCompile(NumericListPattern)
	delimitedListPattern = regexp.MustCompile(DelimitedListPattern)
)

// IsWellFormedIdentifier reports whether value is a hyphenated 8-4-4-4-12 GUID.
// Braced, URN and compact forms are rejected and nothing is normalised.
func IsWellFormedIdentifier(value string) bool {
	if len(value) != canonicalIdentifierLength {
		return false
	}

	return uuid.Validate(value) == nil
}

// IsValidDelimitedNumericList reports whether value is one or more runs of
// digits separated by semicolons, for example "123; 456".
func IsValidDelimitedNumericList(value string) bool {
	return numericListPattern.MatchString(value)
}

// IsValidDelimitedList reports whether value is a semicolon separated list of
// non-empty tokens. A token must not start with whitespace, but whitespace is
// allowed right after a delimiter.
func IsValidDelimitedList(value string) bool {
	return delimitedListPattern.MatchString(value)
}
