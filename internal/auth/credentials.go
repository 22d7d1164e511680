package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Deterministic credential derivation. The password-based identity store
// stands in for phone-verified identity: since possession of the phone is
// already proven by the SMS OTP step, the sign-in credential only needs to be
// reproducible from the phone number, not secret. This derivation must never
// be exposed as a general-purpose credential scheme.

const credentialSalt = "learnhq-otp-identity-v1"

// DeriveCredential produces the sign-in credential for a country-code-prefixed
// phone number. Same input, same output, always.
func DeriveCredential(prefixedPhone string) string {
	sum := sha256.Sum256([]byte(credentialSalt + ":" + prefixedPhone))
	return hex.EncodeToString(sum[:])
}

// HashCredential hashes a derived credential for storage using bcrypt
func HashCredential(credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckCredential compares a derived credential with a stored hash
func CheckCredential(credential, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
	return err == nil
}
