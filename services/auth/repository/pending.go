package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/pkg/models"
)

func pendingKey(sessionID string) string {
	return fmt.Sprintf(constants.KeyAuthPending, sessionID)
}

// StorePendingContext keeps the in-flight auth context (registration form or
// identity reference) keyed by the opaque auth session id until the OTP
// round-trip completes.
func (r *AuthRepo) StorePendingContext(ctx context.Context, sessionID string, pending *models.PendingAuthContext, ttl time.Duration) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending context: %w", err)
	}
	if err := r.cache.Set(ctx, pendingKey(sessionID), data, ttl); err != nil {
		return fmt.Errorf("failed to store pending context: %w", err)
	}
	return nil
}

func (r *AuthRepo) GetPendingContext(ctx context.Context, sessionID string) (*models.PendingAuthContext, error) {
	data, err := r.cache.Get(ctx, pendingKey(sessionID))
	if err == redis.Nil {
		return nil, apperrors.NotFound("no pending verification for this session")
	}
	if err != nil {
		return nil, apperrors.Transient("pending context store unavailable", err)
	}

	var pending models.PendingAuthContext
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending context: %w", err)
	}
	return &pending, nil
}

func (r *AuthRepo) DeletePendingContext(ctx context.Context, sessionID string) error {
	return r.cache.Delete(ctx, pendingKey(sessionID))
}
