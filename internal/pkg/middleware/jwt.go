package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/emresource/emresource/internal/pkg/jwt"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// JWTAuthMiddleware authenticates requests via a Bearer token and places the
// identity id and role in the Echo context. Claims are re-parsed from the
// Authorization header with our own token package to avoid type conflicts
// with the middleware's token representation.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(config.Secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return
			}
			if rawID, exists := claims["user_id"]; exists {
				if userID, err := uuid.Parse(fmt.Sprintf("%v", rawID)); err == nil {
					c.Set("user_id", userID)
				}
			}
			if role, exists := claims["role"]; exists {
				c.Set("user_role", models.Role(fmt.Sprintf("%v", role)))
			}
		},
	})
}

// RequirePermission authorizes the authenticated role against the single
// role-to-permission mapping. Must run after JWTAuthMiddleware.
func RequirePermission(perm models.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("user_role").(models.Role)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if !role.Can(perm) {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// UserIDFromContext extracts the authenticated identity id set by
// JWTAuthMiddleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// RoleFromContext extracts the authenticated role.
func RoleFromContext(c echo.Context) (models.Role, bool) {
	role, ok := c.Get("user_role").(models.Role)
	return role, ok
}
