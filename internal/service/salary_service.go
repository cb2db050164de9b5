package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// SalaryService implements salary business rules.
type SalaryService struct {
	salaries   repository.SalaryRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewSalaryService constructs the service. Dispatcher may be nil.
func NewSalaryService(salaries repository.SalaryRepository, employees repository.EmployeeRepository, dispatcher events.Dispatcher) *SalaryService {
	return &SalaryService{salaries: salaries, employees: employees, dispatcher: dispatcher}
}

// SalaryDetail joins a salary row with a snapshot of the owning employee.
type SalaryDetail struct {
	Salary   domain.Salary
	Employee domain.Employee
}

// SalaryInput carries creation fields.
type SalaryInput struct {
	EmployeeID       int64
	BaseSalary       float64
	SpecialAllowance float64
	Bonus            float64
}

// Create persists a salary row. At most one salary exists per employee; a
// duplicate renders as 403 per the API contract. The employee reference is
// deliberately not validated here, unlike promotion creation.
func (s *SalaryService) Create(ctx context.Context, input SalaryInput) (*domain.Salary, error) {
	existing, err := s.salaries.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}
	if existing != nil {
		return nil, apperrors.NewDomainError(
			"CONFLICT",
			"employee already has a salary, use the update operation",
			http.StatusForbidden,
			map[string]any{"employee_id": input.EmployeeID},
		)
	}

	salary := &domain.Salary{
		EmployeeID:       input.EmployeeID,
		BaseSalary:       input.BaseSalary,
		SpecialAllowance: input.SpecialAllowance,
		Bonus:            input.Bonus,
	}
	if err := s.salaries.Create(ctx, salary); err != nil {
		return nil, apperrors.MapError(err)
	}
	return salary, nil
}

// GetByEmployeeID returns the salary joined with the employee snapshot. The
// snapshot stays zero-valued when the referenced employee does not exist.
func (s *SalaryService) GetByEmployeeID(ctx context.Context, employeeID int64) (*SalaryDetail, error) {
	salary, err := s.salaries.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("salary", map[string]any{"employee_id": employeeID})
		}
		return nil, apperrors.MapError(err)
	}

	detail := &SalaryDetail{Salary: *salary}
	if emp, err := s.employees.GetByID(ctx, employeeID); err == nil {
		detail.Employee = *emp
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}
	return detail, nil
}

// Update adds the increment to the stored base salary and records it as the
// last increment. The total is never stored; it is recomputed on read.
func (s *SalaryService) Update(ctx context.Context, actor events.Actor, employeeID int64, increment float64) (*SalaryDetail, error) {
	salary, err := s.salaries.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("salary", map[string]any{"employee_id": employeeID})
		}
		return nil, apperrors.MapError(err)
	}

	salary.BaseSalary += increment
	salary.LastIncrement = increment
	if err := s.salaries.Update(ctx, salary); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventSalaryChanged,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.SalaryChangedPayload{
			EmployeeID: employeeID,
			Increment:  increment,
			NewAmount:  salary.Amount(),
		},
	})

	detail := &SalaryDetail{Salary: *salary}
	if emp, err := s.employees.GetByID(ctx, employeeID); err == nil {
		detail.Employee = *emp
	}
	return detail, nil
}

// Delete removes the salary row for an employee.
func (s *SalaryService) Delete(ctx context.Context, employeeID int64) error {
	if err := s.salaries.DeleteByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("salary", map[string]any{"employee_id": employeeID})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *SalaryService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
