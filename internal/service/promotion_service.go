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

// PromotionService implements promotion business rules.
type PromotionService struct {
	promotions repository.PromotionRepository
	tx         TxRunner
	dispatcher events.Dispatcher
}

// NewPromotionService constructs the service. Dispatcher may be nil.
func NewPromotionService(promotions repository.PromotionRepository, tx TxRunner, dispatcher events.Dispatcher) *PromotionService {
	return &PromotionService{promotions: promotions, tx: tx, dispatcher: dispatcher}
}

// Create records a promotion and overwrites the employee's position with the
// new label. Both writes run in one transaction: a promotion row without the
// position change, or the reverse, must never be observable.
func (s *PromotionService) Create(ctx context.Context, actor events.Actor, employeeID int64, newPosition string) (*domain.Promotion, error) {
	promotion := &domain.Promotion{
		EmployeeID:    employeeID,
		PromotionDate: time.Now().UTC(),
		NewPosition:   newPosition,
	}
	oldPosition := ""

	err := s.tx.Run(ctx, func(
		employees repository.EmployeeRepository,
		_ repository.SalaryRepository,
		promotions repository.PromotionRepository,
	) error {
		emp, err := employees.GetByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("employee", map[string]any{"id": employeeID})
			}
			return err
		}
		oldPosition = emp.Position

		if err := promotions.Create(ctx, promotion); err != nil {
			return err
		}
		emp.Position = newPosition
		return employees.Update(ctx, emp)
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventEmployeePromoted,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload: events.EmployeePromotedPayload{
			EmployeeID:  employeeID,
			PromotionID: promotion.ID,
			OldPosition: oldPosition,
			NewPosition: newPosition,
		},
	})
	return promotion, nil
}

// GetAll returns every promotion record.
func (s *PromotionService) GetAll(ctx context.Context) ([]domain.Promotion, error) {
	promotions, err := s.promotions.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return promotions, nil
}

// GetByID fetches a single promotion.
func (s *PromotionService) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	promotion, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("promotion", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return promotion, nil
}

// Delete removes a promotion record. The employee's current position is left
// untouched; history deletion is not an undo.
func (s *PromotionService) Delete(ctx context.Context, id int64) error {
	if err := s.promotions.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("promotion", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *PromotionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
