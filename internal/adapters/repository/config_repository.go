package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// ConfigRepositoryImpl implements the ConfigRepository interface
type ConfigRepositoryImpl struct {
	db *sqlx.DB
}

// NewConfigRepository creates a new config repository
func NewConfigRepository(db *sqlx.DB) ports.ConfigRepository {
	return &ConfigRepositoryImpl{db: db}
}

func (r *ConfigRepositoryImpl) Get(ctx context.Context, key string) (*entities.ConfigEntry, error) {
	query := `
		SELECT key, value, updated_by, created_at, updated_at
		FROM site_config
		WHERE key = $1`

	var entry entities.ConfigEntry
	err := r.db.GetContext(ctx, &entry, query, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrConfigNotFound
		}
		return nil, fmt.Errorf("get config: %w", err)
	}

	return &entry, nil
}

func (r *ConfigRepositoryImpl) GetAll(ctx context.Context) ([]*entities.ConfigEntry, error) {
	query := `
		SELECT key, value, updated_by, created_at, updated_at
		FROM site_config
		ORDER BY key`

	var entries []*entities.ConfigEntry
	err := r.db.SelectContext(ctx, &entries, query)
	if err != nil {
		return nil, fmt.Errorf("get all config: %w", err)
	}

	return entries, nil
}

// Upsert replaces the stored document for key wholesale. Writing the same
// value twice leaves the stored state unchanged.
func (r *ConfigRepositoryImpl) Upsert(ctx context.Context, key string, value json.RawMessage, updatedBy *uuid.UUID) error {
	query := `
		INSERT INTO site_config (key, value, updated_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query, key, []byte(value), updatedBy)
	if err != nil {
		return fmt.Errorf("upsert config: %w", err)
	}

	return nil
}
