package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// SalaryHandler manages salary endpoints.
type SalaryHandler struct {
	service *service.SalaryService
}

// NewSalaryHandler constructs handler.
func NewSalaryHandler(salaryService *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{service: salaryService}
}

// Create POST /salary.
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var req dto.SalaryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID <= 0 {
		return apperrors.NewValidationError("employee_id must be a positive integer", map[string]any{"employee_id": req.EmployeeID})
	}
	if req.BaseSalary < 0 || req.SpecialAllowance < 0 || req.Bonus < 0 {
		return apperrors.NewValidationError("salary components must not be negative", nil)
	}

	salary, err := h.service.Create(c.Context(), service.SalaryInput{
		EmployeeID:       req.EmployeeID,
		BaseSalary:       req.BaseSalary,
		SpecialAllowance: req.SpecialAllowance,
		Bonus:            req.Bonus,
	})
	if err != nil {
		return err
	}
	detail := service.SalaryDetail{Salary: *salary}
	return c.Status(http.StatusCreated).JSON(salaryResponse(&detail))
}

// Get GET /salary/:employeeId.
func (h *SalaryHandler) Get(c *fiber.Ctx) error {
	employeeID, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	detail, err := h.service.GetByEmployeeID(c.Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(salaryResponse(detail))
}

// Update PUT /salary/:employeeId. The increment arrives as a query parameter
// and defaults to zero.
func (h *SalaryHandler) Update(c *fiber.Ctx) error {
	employeeID, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	increment := 0.0
	if raw := c.Query("increment"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.NewValidationError("increment must be a number", map[string]any{"increment": raw})
		}
		increment = parsed
	}

	detail, err := h.service.Update(c.Context(), actorFromContext(c), employeeID, increment)
	if err != nil {
		return err
	}
	return c.JSON(salaryResponse(detail))
}

// Delete DELETE /salary/:employeeId.
func (h *SalaryHandler) Delete(c *fiber.Ctx) error {
	employeeID, err := parsePositiveID(c, "employeeId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), employeeID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func salaryResponse(detail *service.SalaryDetail) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID: detail.Salary.ID,
		Employee: dto.EmployeeBase{
			Name:         detail.Employee.Name,
			Age:          detail.Employee.Age,
			Position:     detail.Employee.Position,
			DepartmentID: detail.Employee.DepartmentID,
		},
		BaseSalary:       detail.Salary.BaseSalary,
		SpecialAllowance: detail.Salary.SpecialAllowance,
		Bonus:            detail.Salary.Bonus,
		Amount:           detail.Salary.Amount(),
	}
}
