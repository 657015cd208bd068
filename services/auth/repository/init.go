package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/models"
)

// AuthRepo implements auth.AuthRepo over Postgres (identities) and
// Redis (one-time credentials, pending auth contexts).
type AuthRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

func NewAuthRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
