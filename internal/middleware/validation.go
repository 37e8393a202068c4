package middleware

import (
	"study-buddy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const ValidatedSessionIDKey = "validated_session_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID checks the :id path parameter of history routes.
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateSessionID(id); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedSessionIDKey, id)
		return c.Next()
	}
}

// ValidateExportSessionID checks the optional session_id query parameter of the export route.
func (vm *ValidationMiddleware) ValidateExportSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("session_id")
		if id == "" {
			return c.Next()
		}
		if errors := vm.validator.ValidateSessionID(id); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedSessionIDKey, id)
		return c.Next()
	}
}
