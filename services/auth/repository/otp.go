package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/pkg/models"
)

// One-time credentials live in Redis as "<code>:<expiresAtUnix>" under
// auth:otp:{purpose}:{email}. Verification is a single Lua script so the
// compare and the delete cannot race a concurrent verify: a credential is
// consumable exactly once, and a mismatching code leaves it in place.
const consumeCredentialScript = `
local v = redis.call('GET', KEYS[1])
if v == false then
  return 'missing'
end
local sep = string.find(v, ':')
local code = string.sub(v, 1, sep - 1)
if code ~= ARGV[1] then
  return 'mismatch'
end
local expires = tonumber(string.sub(v, sep + 1))
redis.call('DEL', KEYS[1])
if expires < tonumber(ARGV[2]) then
  return 'expired'
end
return 'ok'
`

func otpKey(purpose models.OTPPurpose, email string) string {
	return fmt.Sprintf(constants.KeyAuthOTP, purpose, email)
}

// StoreCredential writes the credential, replacing any live credential for
// the same (email, purpose) pair. The Redis TTL backs the logical expiry
// carried inside the value.
func (r *AuthRepo) StoreCredential(ctx context.Context, cred *models.OneTimeCredential, ttl time.Duration) error {
	value := cred.Code + ":" + strconv.FormatInt(cred.ExpiresAt.Unix(), 10)
	if err := r.cache.Set(ctx, otpKey(cred.Purpose, cred.Email), value, ttl); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// ConsumeCredential atomically checks the submitted code against the stored
// credential and deletes it on a match. A wrong code does not consume the
// credential; an expired one is removed and reported as expired.
func (r *AuthRepo) ConsumeCredential(ctx context.Context, email string, purpose models.OTPPurpose, code string) error {
	res, err := r.cache.Eval(ctx, consumeCredentialScript,
		[]string{otpKey(purpose, email)},
		code, time.Now().Unix())
	if err != nil && err != redis.Nil {
		return apperrors.Transient("credential store unavailable", err)
	}

	outcome, _ := res.(string)
	switch strings.TrimSpace(outcome) {
	case "ok":
		return nil
	case "mismatch":
		return apperrors.Unauthorized("verification code mismatch")
	case "expired":
		return apperrors.Expired("verification code expired")
	default:
		return apperrors.NotFound("no verification code pending")
	}
}
