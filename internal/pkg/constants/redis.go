package constants

// Redis key formats
const (
	// Auth service
	KeyAuthOTP     = "auth:otp:%s:%s"  // Format: auth:otp:{purpose}:{email}
	KeyAuthPending = "auth:pending:%s" // Format: auth:pending:{auth_session_id}

	// Proximity index geo sets, members are entity IDs
	KeyRequestGeo  = "geo:requests"
	KeyDonorGeo    = "geo:donors"
	KeyFacilityGeo = "geo:facilities"

	// Availability sets consulted after a geo query
	KeyAvailableDonors  = "donors:available"
	KeyActiveFacilities = "facilities:active"

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
