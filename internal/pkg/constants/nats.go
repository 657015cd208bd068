package constants

// NATS subjects for the external collaborator boundaries
const (
	// OTP email delivery, consumed by the notification service
	SubjectOTPEmail = "notify.email.otp"

	// Emergency events for responder fan-out
	SubjectRequestCreated = "emergency.request.created"
	SubjectRequestUpdated = "emergency.request.updated"
	SubjectSOSTriggered   = "emergency.sos"
)
