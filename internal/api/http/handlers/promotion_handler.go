package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// PromotionHandler manages promotion endpoints.
type PromotionHandler struct {
	service *service.PromotionService
}

// NewPromotionHandler constructs handler.
func NewPromotionHandler(promotionService *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: promotionService}
}

// Create POST /promotions/createpromotion.
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var req dto.PromotionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID <= 0 {
		return apperrors.NewValidationError("employee_id must be a positive integer", map[string]any{"employee_id": req.EmployeeID})
	}
	if req.NewPosition == "" {
		return apperrors.NewValidationError("new_position required", nil)
	}

	promotion, err := h.service.Create(c.Context(), actorFromContext(c), req.EmployeeID, req.NewPosition)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(promotionResponse(promotion))
}

// List GET /promotions.
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	promotions, err := h.service.GetAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		items = append(items, promotionResponse(&promotions[i]))
	}
	return c.JSON(items)
}

// Get GET /promotions/:promotionId.
func (h *PromotionHandler) Get(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "promotionId")
	if err != nil {
		return err
	}
	promotion, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(promotionResponse(promotion))
}

// Delete DELETE /promotions/:promotionId.
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "promotionId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func promotionResponse(promotion *domain.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:            promotion.ID,
		EmployeeID:    promotion.EmployeeID,
		PromotionDate: promotion.PromotionDate,
		NewPosition:   promotion.NewPosition,
	}
}
