package ports

import "github.com/minproducer/kulana-cms/internal/domain/entities"

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on successful authentication. Token is a bearer
// token the client presents on every write and upload.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Claims holds the identity extracted from a validated bearer token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UpdateConfigRequest replaces the stored document for Key with Value.
type UpdateConfigRequest struct {
	Key   string      `json:"key" validate:"required"`
	Value interface{} `json:"value" validate:"required"`
}

// UploadResult points at the durable URL of a stored image.
type UploadResult struct {
	URL    string           `json:"url"`
	Upload *entities.Upload `json:"-"`
}
