package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/events"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// parsePositiveID reads a path parameter that must be a positive integer.
// Anything else is rejected before reaching the service layer.
func parsePositiveID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("path id must be a positive integer", map[string]any{name: raw})
	}
	return id, nil
}

// actorFromContext converts the authenticated identity into event attribution.
func actorFromContext(c *fiber.Ctx) events.Actor {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return events.Actor{}
	}
	return events.Actor{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
	}
}
