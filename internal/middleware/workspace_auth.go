package middleware

import (
	"context"
	"strings"

	"study-buddy/internal/dto"
	"study-buddy/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	WorkspaceIDKey      = "workspaceID" // Key for storing the workspace id in fiber.Ctx locals
)

// TokenValidator is the part of the workspace service the middleware needs.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*dto.WorkspaceClaims, error)
}

// RequireWorkspace rejects requests without a valid workspace bearer token and stores
// the workspace id in the request locals.
func RequireWorkspace(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		// Proxies may trim the trailing space of a bare "Bearer " header.
		if !strings.HasPrefix(authHeader+" ", BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader+" ", BearerSchema))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := validator.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Workspace token rejected", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Workspace token is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(WorkspaceIDKey, claims.WorkspaceID)
		return c.Next()
	}
}

// WorkspaceID returns the id stored by RequireWorkspace, or "" outside protected routes.
func WorkspaceID(c *fiber.Ctx) string {
	id, _ := c.Locals(WorkspaceIDKey).(string)
	return id
}
