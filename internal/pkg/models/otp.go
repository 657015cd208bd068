package models

import (
	"time"
)

// OTPPurpose scopes a one-time credential to a single flow. A signup
// credential can never satisfy a signin verification and vice versa.
type OTPPurpose string

const (
	OTPPurposeSignup OTPPurpose = "signup"
	OTPPurposeSignin OTPPurpose = "signin"
)

// Valid reports whether the purpose is a known flow.
func (p OTPPurpose) Valid() bool {
	return p == OTPPurposeSignup || p == OTPPurposeSignin
}

// OneTimeCredential is a short-lived 6-digit code bound to (email, purpose).
// At most one live credential exists per pair: issuing replaces any prior
// one, and verification consumes it.
type OneTimeCredential struct {
	Email     string     `json:"email"`
	Purpose   OTPPurpose `json:"purpose"`
	Code      string     `json:"code"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Expired reports whether the credential is past its logical expiry at the
// given instant. The store's TTL eviction may trail this by a few seconds,
// so verification checks it defensively as well.
func (c *OneTimeCredential) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// PendingAuthContext bridges OTP issuance and verification for one client
// auth session. Exactly one exists per session; starting a new attempt for
// either track overwrites it.
type PendingAuthContext struct {
	Purpose OTPPurpose `json:"purpose"`
	Email   string     `json:"email"`

	// Signup track: the full registration payload awaiting confirmation.
	Registration *SignupRequest `json:"registration,omitempty"`

	// Signin track: the resolved identity awaiting confirmation.
	IdentityID string `json:"identity_id,omitempty"`
}

// OTPDeliveryEvent is published to the external delivery collaborator.
// Delivery is fire-and-forget from the auth flow's perspective.
type OTPDeliveryEvent struct {
	Email   string     `json:"email"`
	Code    string     `json:"code"`
	Purpose OTPPurpose `json:"purpose"`
}
