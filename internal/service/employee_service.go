package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeeService implements employee business rules.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	tx         TxRunner
	dispatcher events.Dispatcher
}

// NewEmployeeService constructs the service. The tx runner backs the cascade
// delete; dispatcher may be nil.
func NewEmployeeService(employees repository.EmployeeRepository, tx TxRunner, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{employees: employees, tx: tx, dispatcher: dispatcher}
}

// EmployeeInput carries create/update fields.
type EmployeeInput struct {
	Name         string
	Age          int
	Position     string
	DepartmentID *int64
}

// Create persists an employee. The department reference is not validated; a
// dangling department id is accepted.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	emp := &domain.Employee{
		Name:         input.Name,
		Age:          input.Age,
		Position:     input.Position,
		DepartmentID: input.DepartmentID,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, apperrors.MapError(err)
	}
	return emp, nil
}

// GetAll returns every employee.
func (s *EmployeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return emps, nil
}

// GetByID fetches a single employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return emp, nil
}

// Update overwrites all mutable fields.
func (s *EmployeeService) Update(ctx context.Context, id int64, input EmployeeInput) error {
	emp := &domain.Employee{
		ID:           id,
		Name:         input.Name,
		Age:          input.Age,
		Position:     input.Position,
		DepartmentID: input.DepartmentID,
	}
	if err := s.employees.Update(ctx, emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// Delete removes an employee together with its salary and promotion rows.
// All three writes commit as one transaction so no dangling references
// survive a partial failure.
func (s *EmployeeService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	salaryRemoved := false
	err := s.tx.Run(ctx, func(
		employees repository.EmployeeRepository,
		salaries repository.SalaryRepository,
		promotions repository.PromotionRepository,
	) error {
		if _, err := employees.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("employee", map[string]any{"id": id})
			}
			return err
		}
		if err := salaries.DeleteByEmployeeID(ctx, id); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
		} else {
			salaryRemoved = true
		}
		if err := promotions.DeleteByEmployeeID(ctx, id); err != nil {
			return err
		}
		return employees.Delete(ctx, id)
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventEmployeeDeleted,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   events.EmployeeDeletedPayload{EmployeeID: id, SalaryRemoved: salaryRemoved},
	})
	return nil
}

func (s *EmployeeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
