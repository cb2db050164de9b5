package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/persistence"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const (
	departmentListCacheKey = "departments:all"
	departmentListCacheTTL = 30 * time.Second
)

// DepartmentService implements department business rules.
type DepartmentService struct {
	departments repository.DepartmentRepository
	cache       *persistence.Redis
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewDepartmentService constructs the service. Cache and dispatcher may be nil.
func NewDepartmentService(departments repository.DepartmentRepository, cache *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		cache:       cache,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Create persists a new department. The name must be unique; the comparison
// is exact and case-sensitive.
func (s *DepartmentService) Create(ctx context.Context, name, description string) (*domain.Department, error) {
	existing, err := s.departments.GetByName(ctx, name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("department '%s' already exists", name),
			map[string]any{"name": name},
		)
	}

	dept := &domain.Department{Name: name, Description: description}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateListCache(ctx)
	return dept, nil
}

// GetAll returns every department, served through a short-lived cache.
func (s *DepartmentService) GetAll(ctx context.Context) ([]domain.Department, error) {
	if cached, ok := s.listFromCache(ctx); ok {
		return cached, nil
	}

	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.storeListCache(ctx, depts)
	return depts, nil
}

// GetByID fetches a single department.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// Update overwrites name and description unconditionally. Renames are not
// re-checked against the unique name; the store constraint backstops that.
func (s *DepartmentService) Update(ctx context.Context, id int64, name, description string) error {
	dept := &domain.Department{ID: id, Name: name, Description: description}
	if err := s.departments.Update(ctx, dept); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.invalidateListCache(ctx)
	return nil
}

// Delete removes a department. Employees referencing it keep their rows; the
// store nulls their department reference.
func (s *DepartmentService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.invalidateListCache(ctx)
	s.publish(ctx, events.Event{
		Type:      events.EventDepartmentDeleted,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   events.DepartmentDeletedPayload{DepartmentID: dept.ID, Name: dept.Name},
	})
	return nil
}

func (s *DepartmentService) listFromCache(ctx context.Context) ([]domain.Department, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, departmentListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var depts []domain.Department
	if err := json.Unmarshal(raw, &depts); err != nil {
		return nil, false
	}
	return depts, true
}

func (s *DepartmentService) storeListCache(ctx context.Context, depts []domain.Department) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(depts)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, departmentListCacheKey, raw, departmentListCacheTTL).Err(); err != nil {
		s.logger.Debug("department list cache store failed", zap.Error(err))
	}
}

func (s *DepartmentService) invalidateListCache(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, departmentListCacheKey).Err(); err != nil {
		s.logger.Debug("department list cache invalidation failed", zap.Error(err))
	}
}

func (s *DepartmentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
