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

// EmployeeHandler manages employee endpoints.
type EmployeeHandler struct {
	service *service.EmployeeService
}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: employeeService}
}

// Create POST /employees/createemployee.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	input, err := parseEmployeeRequest(c)
	if err != nil {
		return err
	}
	emp, err := h.service.Create(c.Context(), *input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employeeResponse(emp))
}

// List GET /employees.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	emps, err := h.service.GetAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		items = append(items, employeeResponse(&emps[i]))
	}
	return c.JSON(items)
}

// Get GET /employees/:employeeId.
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	emp, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Update PUT /employees/:employeeId.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	input, err := parseEmployeeRequest(c)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Context(), id, *input); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete DELETE /employees/:employeeId.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), actorFromContext(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseEmployeeRequest(c *fiber.Ctx) (*service.EmployeeInput, error) {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if n := utf8.RuneCountInString(req.Name); n < 1 || n > 100 {
		return nil, apperrors.NewValidationError("name must be 1 to 100 characters", map[string]any{"name": req.Name})
	}
	if req.Age < 18 || req.Age > 100 {
		return nil, apperrors.NewValidationError("age must be between 18 and 100", map[string]any{"age": req.Age})
	}
	if req.Position == "" {
		return nil, apperrors.NewValidationError("position required", nil)
	}
	return &service.EmployeeInput{
		Name:         req.Name,
		Age:          req.Age,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
	}, nil
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Age:          emp.Age,
		Position:     emp.Position,
		DepartmentID: emp.DepartmentID,
	}
}
