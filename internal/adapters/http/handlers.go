package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/minproducer/kulana-cms/internal/application/services"
	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/infrastructure/logger"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// Envelope is the response shape shared by every endpoint. The admin frontend
// predates this server and keys off the success flag, so the shape is part of
// the external contract.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ConfigValue wraps a document in the data payload of get-config responses.
type ConfigValue struct {
	Value interface{} `json:"value"`
}

// UploadData carries the durable URL of a stored image.
type UploadData struct {
	URL string `json:"url"`
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges credentials for a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Invalid request format"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Username and password are required"})
	}

	result, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Invalid credentials"})
		}
		h.logger.Errorw("Login failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Login failed"})
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: result})
}

// ConfigHandler handles configuration document requests
type ConfigHandler struct {
	configService *services.ConfigService
	logger        *logger.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService *services.ConfigService, logger *logger.Logger) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
		logger:        logger,
	}
}

// GetConfig returns one document by key, or all documents when key is omitted.
// Reads are unauthenticated; the public site uses them directly.
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	key := c.QueryParam("key")

	if key == "" {
		docs, err := h.configService.GetAllDocuments(c.Request().Context())
		if err != nil {
			h.logger.Errorw("Get all config failed", "error", err)
			return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Failed to load configuration"})
		}
		return c.JSON(http.StatusOK, Envelope{Success: true, Data: ConfigValue{Value: docs}})
	}

	value, err := h.configService.GetDocument(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, entities.ErrConfigNotFound) {
			return c.JSON(http.StatusNotFound, Envelope{Success: false, Message: "Config not found"})
		}
		h.logger.Errorw("Get config failed", "error", err, "key", key)
		return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Failed to load configuration"})
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: ConfigValue{Value: value}})
}

// UpdateConfig replaces the whole stored document for a key. Requires a valid
// bearer token.
func (h *ConfigHandler) UpdateConfig(c echo.Context) error {
	var req ports.UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Invalid request format"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Key and value are required"})
	}

	userID := getUserIDFromContext(c)

	err := h.configService.UpdateDocument(c.Request().Context(), req.Key, req.Value, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUnknownConfigKey) {
			return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Unknown config key"})
		}
		h.logger.Errorw("Update config failed", "error", err, "key", req.Key)
		return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Failed to save configuration"})
	}

	return c.JSON(http.StatusOK, Envelope{Success: true})
}

// UploadHandler handles image uploads
type UploadHandler struct {
	uploadService *services.UploadService
	logger        *logger.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *services.UploadService, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// UploadImage stores a multipart image and returns its durable URL. Requires
// a valid bearer token.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "No image provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("Failed to open uploaded file", "error", err)
		return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Upload failed"})
	}
	defer file.Close()

	userID, err := uuid.Parse(getUserIDFromContext(c))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Invalid token"})
	}

	result, err := h.uploadService.Store(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		userID,
	)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUploadTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, Envelope{Success: false, Message: "Image exceeds the size limit"})
		case errors.Is(err, entities.ErrInvalidUpload):
			return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Unsupported image type"})
		}
		h.logger.Errorw("Upload failed", "error", err, "file", fileHeader.Filename)
		return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Upload failed"})
	}

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: UploadData{URL: result.URL}})
}

func getUserIDFromContext(c echo.Context) string {
	user := c.Get("user")
	if user == nil {
		return ""
	}
	if userStr, ok := user.(string); ok {
		return userStr
	}
	return ""
}
