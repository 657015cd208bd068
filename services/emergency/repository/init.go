package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/models"
)

// EmergencyRepo implements emergency.EmergencyRepo over Postgres (requests,
// responses, donors, facilities, contacts) and Redis (proximity index).
type EmergencyRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

func NewEmergencyRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *EmergencyRepo {
	return &EmergencyRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
