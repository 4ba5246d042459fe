package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
)

// ConfigRepository defines the interface for configuration document storage.
// Documents are created implicitly on first write and thereafter replaced
// wholesale; there is no delete operation.
type ConfigRepository interface {
	Get(ctx context.Context, key string) (*entities.ConfigEntry, error)
	GetAll(ctx context.Context) ([]*entities.ConfigEntry, error)
	Upsert(ctx context.Context, key string, value json.RawMessage, updatedBy *uuid.UUID) error
}

// UserRepository defines the interface for admin account storage.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// UploadRepository defines the interface for upload metadata storage.
type UploadRepository interface {
	Create(ctx context.Context, upload *entities.Upload) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Upload, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Upload, error)
}
