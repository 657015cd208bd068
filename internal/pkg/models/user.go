package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies which side of the platform an identity acts on.
// It is fixed at creation and must match the role asserted at sign-in.
type Role string

const (
	RoleRequester        Role = "requester"
	RoleDonor            Role = "donor"
	RoleFacilityOperator Role = "facility_operator"
	RoleAdmin            Role = "admin"
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleDonor, RoleFacilityOperator, RoleAdmin:
		return true
	}
	return false
}

// Permission names a capability checked at the gate boundary instead of
// scattering role string comparisons across handlers.
type Permission string

const (
	PermCreateRequest    Permission = "emergency:create"
	PermRespond          Permission = "emergency:respond"
	PermManageOwnRequest Permission = "emergency:manage_own"
	PermRegisterDonor    Permission = "donor:register"
	PermManageFacility   Permission = "facility:manage"
	PermAdminAll         Permission = "admin:all"
)

// rolePermissions is the single role-to-permission mapping consulted by the
// authorization middleware.
var rolePermissions = map[Role][]Permission{
	RoleRequester:        {PermCreateRequest, PermRespond, PermManageOwnRequest},
	RoleDonor:            {PermCreateRequest, PermRespond, PermManageOwnRequest, PermRegisterDonor},
	RoleFacilityOperator: {PermCreateRequest, PermRespond, PermManageOwnRequest, PermManageFacility},
	RoleAdmin:            {PermAdminAll},
}

// Can reports whether the role carries the given permission. Admin carries
// every permission implicitly.
func (r Role) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == PermAdminAll || granted == p {
			return true
		}
	}
	return false
}

// Destination returns the fixed post-login destination for the role.
// Total: every valid role maps to exactly one path.
func (r Role) Destination() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleFacilityOperator:
		return "/facility/dashboard"
	case RoleDonor:
		return "/donor/dashboard"
	default:
		return "/dashboard"
	}
}

// Identity represents an authenticated account in the system.
type Identity struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"full_name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	ProviderSub  string    `json:"-" db:"provider_sub"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeEmail lowercases and trims an email for case-insensitive matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupRequest is the payload for POST /auth/signup/send-otp.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SigninRequest is the payload for POST /auth/signin/send-otp.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// VerifyOTPRequest is the payload for both verify-otp endpoints.
type VerifyOTPRequest struct {
	AuthSessionID string `json:"auth_session_id"`
	OTP           string `json:"otp"`
}

// ExternalIdentityRequest is what the identity-provider collaborator hands
// over after it has verified the user: nothing from it enters the OTP flow.
type ExternalIdentityRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	ProviderSub string `json:"provider_sub"`
}

// OTPIssuedResponse acknowledges credential issuance; the auth session id
// keys the pending context and must be echoed back on verification.
type OTPIssuedResponse struct {
	AuthSessionID string `json:"auth_session_id"`
	ExpiresAt     int64  `json:"expires_at"`
}

// AuthResponse is returned after a successful OTP verification.
type AuthResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Redirect  string    `json:"redirect"`
	ExpiresAt int64     `json:"expires_at"`
	User      *Identity `json:"user,omitempty"`
}
