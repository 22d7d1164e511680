package otp

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// codePattern matches exactly 6 digits, the only accepted OTP shape.
var codePattern = regexp.MustCompile(`^\d{6}$`)

// NormalizePhone strips every non-digit character from the input.
func NormalizePhone(input string) string {
	return nonDigits.ReplaceAllString(input, "")
}

// ValidatePhoneNumber reports whether the input is a valid local phone
// number: exactly 10 digits after stripping non-digits. International
// formats are not accepted.
func ValidatePhoneNumber(input string) bool {
	return len(NormalizePhone(input)) == 10
}

// ValidateCode reports whether the input is exactly 6 digits.
func ValidateCode(code string) bool {
	return codePattern.MatchString(code)
}

// WithCountryCode prefixes the digits-only number with the country code,
// normalizing first. Used for mapping keys and any external representation
// that requires the full number.
func WithCountryCode(countryCode, phone string) string {
	digits := NormalizePhone(phone)
	cc := strings.TrimPrefix(countryCode, "+")
	return cc + digits
}
