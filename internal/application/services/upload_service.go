package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/infrastructure/config"
	"github.com/minproducer/kulana-cms/internal/infrastructure/logger"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// Extensions accepted for image uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadService stores uploaded images on disk and records their metadata
type UploadService struct {
	uploadRepo ports.UploadRepository
	cfg        config.UploadsConfig
	baseURL    string
	logger     *logger.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(uploadRepo ports.UploadRepository, cfg config.UploadsConfig, baseURL string, logger *logger.Logger) *UploadService {
	return &UploadService{
		uploadRepo: uploadRepo,
		cfg:        cfg,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Store saves an image and returns its durable public URL. Size and type
// constraints are enforced here; clients surface the rejection rather than
// re-validating byte-for-byte.
func (s *UploadService) Store(ctx context.Context, originalName, contentType string, size int64, r io.Reader, uploadedBy uuid.UUID) (*ports.UploadResult, error) {
	if size <= 0 {
		return nil, entities.ErrInvalidUpload
	}
	if size > s.cfg.MaxSizeBytes {
		return nil, entities.ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] || !strings.HasPrefix(contentType, "image/") {
		return nil, entities.ErrInvalidUpload
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	id := uuid.New()
	fileName := id.String() + ext
	dst := filepath.Join(s.cfg.Dir, fileName)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.cfg.MaxSizeBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > s.cfg.MaxSizeBytes {
		err = entities.ErrUploadTooLarge
	}
	if err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("write upload: %w", err)
	}

	upload := &entities.Upload{
		ID:           id,
		FileName:     fileName,
		OriginalName: originalName,
		ContentType:  contentType,
		SizeBytes:    written,
		UploadedBy:   uploadedBy,
	}

	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		os.Remove(dst)
		return nil, err
	}

	url := s.baseURL + path.Join(s.cfg.PublicPath, fileName)
	s.logger.Infow("Image uploaded", "file", fileName, "size", written, "uploaded_by", uploadedBy)

	return &ports.UploadResult{URL: url, Upload: upload}, nil
}
