package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// RequireRole enforces an exact role match. There is no role hierarchy: an
// admin token does not satisfy a manager-only route, and vice versa.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if identity.Role != role {
			return apperrors.NewForbidden(role.String() + " access required")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures any valid identity is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
