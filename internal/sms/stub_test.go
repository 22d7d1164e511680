package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub_SendThenVerify(t *testing.T) {
	stub := NewStub()
	ctx := context.Background()

	sessionID, err := stub.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	// Wrong code fails, session stays usable.
	err = stub.VerifyOTP(ctx, sessionID, "000000")
	require.Error(t, err)
	detail, ok := IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "OTP Mismatch", detail)

	// Fixed code succeeds and consumes the session.
	require.NoError(t, stub.VerifyOTP(ctx, sessionID, StubCode))

	err = stub.VerifyOTP(ctx, sessionID, StubCode)
	require.Error(t, err)
	detail, ok = IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "OTP Expired", detail)
}

func TestStub_UnknownSession(t *testing.T) {
	stub := NewStub()

	err := stub.VerifyOTP(context.Background(), "nope", StubCode)
	require.Error(t, err)
	_, ok := IsProviderError(err)
	assert.True(t, ok)
}
