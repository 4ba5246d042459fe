package entities

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrConfigNotFound     = errors.New("config not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUploadNotFound     = errors.New("upload not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnknownConfigKey   = errors.New("unknown config key")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrUploadTooLarge     = errors.New("upload exceeds size limit")
)

// User represents an admin panel account.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ConfigEntry is one stored configuration document. Value is the raw JSON
// document; callers decode it into the typed shape for its key. The entry is
// replaced wholesale on every write.
type ConfigEntry struct {
	Key       string          `json:"key" db:"key"`
	Value     json.RawMessage `json:"value" db:"value"`
	UpdatedBy *uuid.UUID      `json:"updated_by" db:"updated_by"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Upload records one stored image file.
type Upload struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FileName     string    `json:"file_name" db:"file_name"`
	OriginalName string    `json:"original_name" db:"original_name"`
	ContentType  string    `json:"content_type" db:"content_type"`
	SizeBytes    int64     `json:"size_bytes" db:"size_bytes"`
	UploadedBy   uuid.UUID `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
