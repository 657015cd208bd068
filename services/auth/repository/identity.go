package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

// GetIdentityByEmail looks up an identity by normalized email.
func (r *AuthRepo) GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := `SELECT id, email, full_name, password_hash, role, is_verified, provider_sub, created_at, updated_at
		FROM users WHERE email = $1`

	var identity models.Identity
	err := r.db.GetContext(ctx, &identity, query, models.NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("identity not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}
	return &identity, nil
}

// GetIdentityByID looks up an identity by primary key.
func (r *AuthRepo) GetIdentityByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	query := `SELECT id, email, full_name, password_hash, role, is_verified, provider_sub, created_at, updated_at
		FROM users WHERE id = $1`

	var identity models.Identity
	err := r.db.GetContext(ctx, &identity, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("identity not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity by id: %w", err)
	}
	return &identity, nil
}

// CreateIdentity inserts a new identity. The unique index on email turns a
// concurrent duplicate signup into a conflict instead of a second row.
func (r *AuthRepo) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	query := `INSERT INTO users (id, email, full_name, password_hash, role, is_verified, provider_sub, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		identity.ID,
		models.NormalizeEmail(identity.Email),
		identity.FullName,
		identity.PasswordHash,
		identity.Role,
		identity.IsVerified,
		identity.ProviderSub,
	)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check identity insert: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("an account with this email already exists")
	}
	return nil
}
