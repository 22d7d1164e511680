package models

// ==============================================
// OTP SESSION
// ==============================================

// OTPSession is the single outstanding OTP challenge. The session id is an
// opaque token issued by the SMS provider; the phone number is stored
// digits-only. Created on a successful send, consumed exactly once on a
// successful verification, replaced wholesale by any later send.
type OTPSession struct {
	SessionID   string `json:"session_id"`
	PhoneNumber string `json:"phone_number"`
}
