package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/models"
)

func setupOTPRepo(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewAuthRepo(&models.Config{}, nil, &database.RedisClient{Client: client})
	return repo, mr
}

func storedCredential(email string, purpose models.OTPPurpose, code string, ttl time.Duration) *models.OneTimeCredential {
	now := time.Now()
	return &models.OneTimeCredential{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestConsumeCredential_Success(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	cred := storedCredential("alice@example.com", models.OTPPurposeSignin, "123456", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, cred, 5*time.Minute))

	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.NoError(t, err)
}

func TestConsumeCredential_ConsumedExactlyOnce(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	cred := storedCredential("alice@example.com", models.OTPPurposeSignin, "123456", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, cred, 5*time.Minute))

	require.NoError(t, repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456"))

	// The same code cannot be redeemed a second time.
	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestConsumeCredential_WrongCodeKeepsCredential(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	cred := storedCredential("alice@example.com", models.OTPPurposeSignin, "123456", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, cred, 5*time.Minute))

	// A mismatching attempt is rejected without consuming the credential.
	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "999999")
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))

	// The correct code still works afterwards.
	err = repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.NoError(t, err)
}

func TestConsumeCredential_PurposeIsolation(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	cred := storedCredential("alice@example.com", models.OTPPurposeSignup, "123456", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, cred, 5*time.Minute))

	// A signup credential does not satisfy a signin verification.
	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	// And it remains live for its own flow.
	err = repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignup, "123456")
	assert.NoError(t, err)
}

func TestConsumeCredential_Expired(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	// Logical expiry in the past, store TTL still live.
	cred := storedCredential("alice@example.com", models.OTPPurposeSignin, "123456", -1*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, cred, 5*time.Minute))

	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindExpired))

	// The expired credential is gone, not retryable.
	err = repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestConsumeCredential_Missing(t *testing.T) {
	repo, _ := setupOTPRepo(t)

	err := repo.ConsumeCredential(context.Background(), "nobody@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestStoreCredential_ReplacesLiveCredential(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	first := storedCredential("alice@example.com", models.OTPPurposeSignin, "111111", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, first, 5*time.Minute))

	second := storedCredential("alice@example.com", models.OTPPurposeSignin, "222222", 5*time.Minute)
	require.NoError(t, repo.StoreCredential(ctx, second, 5*time.Minute))

	// Only the newest code is redeemable.
	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "111111")
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))

	err = repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "222222")
	assert.NoError(t, err)
}

func TestConsumeCredential_StoreEviction(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	cred := storedCredential("alice@example.com", models.OTPPurposeSignin, "123456", 1*time.Second)
	require.NoError(t, repo.StoreCredential(ctx, cred, 1*time.Second))

	mr.FastForward(2 * time.Second)

	err := repo.ConsumeCredential(ctx, "alice@example.com", models.OTPPurposeSignin, "123456")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestPendingContext_RoundTrip(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	pending := &models.PendingAuthContext{
		Purpose: models.OTPPurposeSignup,
		Email:   "alice@example.com",
		Registration: &models.SignupRequest{
			Name:  "Alice",
			Email: "alice@example.com",
			Role:  models.RoleDonor,
		},
	}
	require.NoError(t, repo.StorePendingContext(ctx, "session-1", pending, 5*time.Minute))

	got, err := repo.GetPendingContext(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, models.OTPPurposeSignup, got.Purpose)
	assert.Equal(t, "alice@example.com", got.Email)
	require.NotNil(t, got.Registration)
	assert.Equal(t, models.RoleDonor, got.Registration.Role)

	require.NoError(t, repo.DeletePendingContext(ctx, "session-1"))

	_, err = repo.GetPendingContext(ctx, "session-1")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
