package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProviderError(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"invalid number", "Invalid Number provided", msgInvalidNumber},
		{"invalid mobile, mixed case", "INVALID MOBILE no", msgInvalidNumber},
		{"dnd block", "DND number", msgDNDBlocked},
		{"do not disturb spelled out", "number is in do not disturb registry", msgDNDBlocked},
		{"rate limit", "Rate limit exceeded for this account", msgRateLimited},
		{"too many requests", "Too Many Requests", msgRateLimited},
		{"low balance hidden from users", "insufficient balance in account", msgUnavailable},
		{"unknown passes through verbatim", "something entirely new happened", "something entirely new happened"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProviderError(tt.raw))
		})
	}
}

func TestNormalizeProviderError_NeverLeaksBillingDetail(t *testing.T) {
	got := NormalizeProviderError("Low Balance: recharge for Rs. 500")
	assert.NotContains(t, got, "Balance")
	assert.NotContains(t, got, "500")
}
