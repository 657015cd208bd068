package database

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/models"
)

// PostgresClient wraps an sqlx connection pool over the pgx driver.
type PostgresClient struct {
	db *sqlx.DB
}

// NewPostgresClient connects to PostgreSQL and verifies the connection.
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return &PostgresClient{db: db}, nil
}

// GetDB returns the underlying sqlx DB instance.
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close closes the database connection pool.
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
