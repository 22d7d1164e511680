package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain 10 digits", "9876543210", true},
		{"formatted number", "(987) 654-3210", true},
		{"spaces and dashes", "98 76 54 32 10", true},
		{"too short", "12345", false},
		{"too long", "98765432101", false},
		{"empty", "", false},
		{"letters only", "abcdefghij", false},
		{"letters mixed in, 10 digits remain", "98a76b54c32d10", true},
		{"country code included makes 12 digits", "+919876543210", false},
		{"nine digits", "987654321", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhoneNumber(tt.input))
		})
	}
}

func TestValidateCode(t *testing.T) {
	assert.True(t, ValidateCode("123456"))
	assert.True(t, ValidateCode("000000"))
	assert.False(t, ValidateCode("12345"))
	assert.False(t, ValidateCode("1234567"))
	assert.False(t, ValidateCode("12345a"))
	assert.False(t, ValidateCode(""))
	assert.False(t, ValidateCode("123 456"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
	assert.Equal(t, "", NormalizePhone("no digits here"))
}

func TestWithCountryCode(t *testing.T) {
	assert.Equal(t, "919876543210", WithCountryCode("91", "9876543210"))
	assert.Equal(t, "919876543210", WithCountryCode("+91", "(987) 654-3210"))
}
