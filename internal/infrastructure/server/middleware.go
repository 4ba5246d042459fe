package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/minproducer/kulana-cms/internal/adapters/http"
	"github.com/minproducer/kulana-cms/internal/application/services"
)

// authMiddleware validates bearer tokens on write and upload endpoints. A
// missing, malformed or expired token always yields a 401 so clients know to
// clear their stored session and re-authenticate.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, httpHandlers.Envelope{Success: false, Message: "Missing authorization header"})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return c.JSON(http.StatusUnauthorized, httpHandlers.Envelope{Success: false, Message: "Invalid authorization header format"})
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return c.JSON(http.StatusUnauthorized, httpHandlers.Envelope{Success: false, Message: "Invalid token"})
			}

			c.Set("user", claims.UserID)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
