package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWellFormedIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "canonical lower case", value: "3fa85f64-5717-4562-b3fc-2c963f66afa6", want: true},
		{name: "canonical upper case", value: "3FA85F64-5717-4562-B3FC-2C963F66AFA6", want: true},
		{name: "nil uuid", value: "00000000-0000-0000-0000-000000000000", want: true},
		{name: "empty", value: "", want: false},
		{name: "not a guid", value: "not-a-guid", want: false},
		{name: "compact form", value: "3fa85f6457174562b3fc2c963f66afa6", want: false},
		{name: "braced form", value: "{3fa85f64-5717-4562-b3fc-2c963f66afa6}", want: false},
		{name: "urn form", value: "urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6", want: false},
		{name: "non hex digit", value: "3fa85f64-5717-4562-b3fc-2c963f66afaz", want: false},
		{name: "misplaced hyphen", value: "3fa85f645-717-4562-b3fc-2c963f66afa6", want: false},
		{name: "surrounding whitespace", value: " 3fa85f64-5717-4562-b3fc-2c963f66afa6", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWellFormedIdentifier(tt.value))
		})
	}
}

func TestIsValidDelimitedNumericList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "single id", value: "123", want: true},
		{name: "two ids", value: "123;456", want: true},
		{name: "space after delimiter", value: "123; 456", want: true},
		{name: "tab after delimiter", value: "1;\t2;3", want: true},
		{name: "trailing delimiter", value: "123;", want: false},
		{name: "leading delimiter", value: ";123", want: false},
		{name: "letters", value: "abc", want: false},
		{name: "empty", value: "", want: false},
		{name: "space before delimiter", value: "123 ;456", want: false},
		{name: "double delimiter", value: "1;;2", want: false},
		{name: "negative number", value: "-1", want: false},
		{name: "comma separated", value: "1,2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDelimitedNumericList(tt.value))
		})
	}
}

func TestIsValidDelimitedList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "single number", value: "7575559999", want: true},
		{name: "formatted numbers", value: "(757) 555-9999;757.555.1234", want: true},
		{name: "space after delimiter", value: "7575559999; 7575551234", want: true},
		{name: "extension", value: "7575559999x12", want: true},
		{name: "empty", value: "", want: false},
		{name: "trailing delimiter", value: "7575559999;", want: false},
		{name: "empty token", value: "1;;2", want: false},
		{name: "only delimiter", value: ";", want: false},
		{name: "leading whitespace", value: " 7575559999", want: false},
		{name: "whitespace only token", value: "1; ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDelimitedList(tt.value))
		})
	}
}

func TestRules_NeverPanic(t *testing.T) {
	inputs := []string{"", ";", "\x00", "{}", "------------------------------------", string([]byte{0xff, 0xfe})}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			IsWellFormedIdentifier(in)
			IsValidDelimitedNumericList(in)
			IsValidDelimitedList(in)
		})
	}
}
