package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/minproducer/kulana-cms/internal/domain/content"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/infrastructure/logger"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// ConfigService handles configuration document operations
type ConfigService struct {
	configRepo ports.ConfigRepository
	logger     *logger.Logger
}

// NewConfigService creates a new config service
func NewConfigService(configRepo ports.ConfigRepository, logger *logger.Logger) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetDocument returns the stored document for key. A key that has never been
// written yields entities.ErrConfigNotFound; the caller decides whether to
// fall back to a built-in default.
func (s *ConfigService) GetDocument(ctx context.Context, key string) (json.RawMessage, error) {
	entry, err := s.configRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// GetAllDocuments returns every stored document keyed by name.
func (s *ConfigService) GetAllDocuments(ctx context.Context) (map[string]json.RawMessage, error) {
	entries, err := s.configRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]json.RawMessage, len(entries))
	for _, entry := range entries {
		docs[entry.Key] = entry.Value
	}
	return docs, nil
}

// UpdateDocument replaces the whole stored value for key. Only known document
// keys are accepted, and the value must be valid JSON.
func (s *ConfigService) UpdateDocument(ctx context.Context, key string, value interface{}, updatedBy string) error {
	if !content.ValidKey(key) {
		return entities.ErrUnknownConfigKey
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	var byUUID *uuid.UUID
	if id, err := uuid.Parse(updatedBy); err == nil {
		byUUID = &id
	}

	if err := s.configRepo.Upsert(ctx, key, raw, byUUID); err != nil {
		return err
	}

	s.logger.Infow("Config document updated", "key", key, "updated_by", updatedBy)
	return nil
}
