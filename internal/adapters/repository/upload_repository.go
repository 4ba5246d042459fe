package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// UploadRepositoryImpl implements the UploadRepository interface
type UploadRepositoryImpl struct {
	db *sqlx.DB
}

// NewUploadRepository creates a new upload repository
func NewUploadRepository(db *sqlx.DB) ports.UploadRepository {
	return &UploadRepositoryImpl{db: db}
}

func (r *UploadRepositoryImpl) Create(ctx context.Context, upload *entities.Upload) error {
	query := `
		INSERT INTO uploads (id, file_name, original_name, content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		upload.ID, upload.FileName, upload.OriginalName,
		upload.ContentType, upload.SizeBytes, upload.UploadedBy,
	).Scan(&upload.CreatedAt)

	if err != nil {
		return fmt.Errorf("create upload: %w", err)
	}

	return nil
}

func (r *UploadRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Upload, error) {
	query := `
		SELECT id, file_name, original_name, content_type, size_bytes, uploaded_by, created_at
		FROM uploads
		WHERE id = $1`

	var upload entities.Upload
	err := r.db.GetContext(ctx, &upload, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrUploadNotFound
		}
		return nil, fmt.Errorf("get upload by id: %w", err)
	}

	return &upload, nil
}

func (r *UploadRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Upload, error) {
	query := `
		SELECT id, file_name, original_name, content_type, size_bytes, uploaded_by, created_at
		FROM uploads
		WHERE uploaded_by = $1
		ORDER BY created_at DESC`

	var uploads []*entities.Upload
	err := r.db.SelectContext(ctx, &uploads, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list uploads by user: %w", err)
	}

	return uploads, nil
}
