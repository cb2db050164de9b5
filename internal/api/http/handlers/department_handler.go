package handlers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// DepartmentHandler manages department endpoints.
type DepartmentHandler struct {
	service *service.DepartmentService
}

// NewDepartmentHandler constructs handler.
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: departmentService}
}

// Create POST /department/createdepartment.
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	req, err := parseDepartmentRequest(c)
	if err != nil {
		return err
	}
	dept, err := h.service.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(departmentResponse(dept))
}

// List GET /department.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	depts, err := h.service.GetAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		items = append(items, departmentResponse(&depts[i]))
	}
	return c.JSON(items)
}

// Get GET /department/:departmentId.
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "departmentId")
	if err != nil {
		return err
	}
	dept, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(departmentResponse(dept))
}

// Update PUT /department/:departmentId.
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "departmentId")
	if err != nil {
		return err
	}
	req, err := parseDepartmentRequest(c)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Context(), id, req.Name, req.Description); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete DELETE /department/:departmentId.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "departmentId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), actorFromContext(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseDepartmentRequest(c *fiber.Ctx) (*dto.DepartmentRequest, error) {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if n := utf8.RuneCountInString(req.Name); n < 3 || n > 20 {
		return nil, apperrors.NewValidationError("name must be 3 to 20 characters", map[string]any{"name": req.Name})
	}
	return &req, nil
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}
