package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
)

// In-memory repositories mirroring the Postgres implementations: pgx.ErrNoRows
// for absent rows, SQLSTATE 23505 for unique violations.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return uniqueViolation("users_username_key")
		}
		if existing.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	r.seq++
	user.ID = r.seq
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.User, 0, len(r.users))
	for id := int64(1); id <= r.seq; id++ {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

type memDepartmentRepo struct {
	mu    sync.Mutex
	seq   int64
	depts map[int64]domain.Department
}

func newMemDepartmentRepo() *memDepartmentRepo {
	return &memDepartmentRepo{depts: make(map[int64]domain.Department)}
}

func (r *memDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.depts {
		if existing.Name == dept.Name {
			return uniqueViolation("departments_name_key")
		}
	}
	r.seq++
	dept.ID = r.seq
	r.depts[dept.ID] = *dept
	return nil
}

func (r *memDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.depts[dept.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.depts[dept.ID] = *dept
	return nil
}

func (r *memDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept, ok := r.depts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dept, nil
}

func (r *memDepartmentRepo) GetByName(_ context.Context, name string) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dept := range r.depts {
		if dept.Name == name {
			d := dept
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Department, 0, len(r.depts))
	for id := int64(1); id <= r.seq; id++ {
		if dept, ok := r.depts[id]; ok {
			result = append(result, dept)
		}
	}
	return result, nil
}

func (r *memDepartmentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.depts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.depts, id)
	return nil
}

type memEmployeeRepo struct {
	mu        sync.Mutex
	seq       int64
	employees map[int64]domain.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[int64]domain.Employee)}
}

func (r *memEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	emp.ID = r.seq
	r.employees[emp.ID] = *emp
	return nil
}

func (r *memEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.employees[emp.ID] = *emp
	return nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (r *memEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Employee, 0, len(r.employees))
	for id := int64(1); id <= r.seq; id++ {
		if emp, ok := r.employees[id]; ok {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.employees, id)
	return nil
}

type memSalaryRepo struct {
	mu       sync.Mutex
	seq      int64
	salaries map[int64]domain.Salary // keyed by employee id
}

func newMemSalaryRepo() *memSalaryRepo {
	return &memSalaryRepo{salaries: make(map[int64]domain.Salary)}
}

func (r *memSalaryRepo) Create(_ context.Context, salary *domain.Salary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.salaries[salary.EmployeeID]; ok {
		return uniqueViolation("salaries_employee_id_key")
	}
	r.seq++
	salary.ID = r.seq
	r.salaries[salary.EmployeeID] = *salary
	return nil
}

func (r *memSalaryRepo) Update(_ context.Context, salary *domain.Salary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.salaries[salary.EmployeeID]; !ok {
		return pgx.ErrNoRows
	}
	r.salaries[salary.EmployeeID] = *salary
	return nil
}

func (r *memSalaryRepo) GetByEmployeeID(_ context.Context, employeeID int64) (*domain.Salary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	salary, ok := r.salaries[employeeID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &salary, nil
}

func (r *memSalaryRepo) DeleteByEmployeeID(_ context.Context, employeeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.salaries[employeeID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.salaries, employeeID)
	return nil
}

type memPromotionRepo struct {
	mu         sync.Mutex
	seq        int64
	promotions map[int64]domain.Promotion
}

func newMemPromotionRepo() *memPromotionRepo {
	return &memPromotionRepo{promotions: make(map[int64]domain.Promotion)}
}

func (r *memPromotionRepo) Create(_ context.Context, promotion *domain.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	promotion.ID = r.seq
	r.promotions[promotion.ID] = *promotion
	return nil
}

func (r *memPromotionRepo) GetByID(_ context.Context, id int64) (*domain.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	promotion, ok := r.promotions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &promotion, nil
}

func (r *memPromotionRepo) List(_ context.Context) ([]domain.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Promotion, 0, len(r.promotions))
	for id := int64(1); id <= r.seq; id++ {
		if promotion, ok := r.promotions[id]; ok {
			result = append(result, promotion)
		}
	}
	return result, nil
}

func (r *memPromotionRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.promotions[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.promotions, id)
	return nil
}

func (r *memPromotionRepo) DeleteByEmployeeID(_ context.Context, employeeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, promotion := range r.promotions {
		if promotion.EmployeeID == employeeID {
			delete(r.promotions, id)
		}
	}
	return nil
}

// fakeTxRunner invokes the callback with the in-memory repositories directly.
type fakeTxRunner struct {
	employees  repository.EmployeeRepository
	salaries   repository.SalaryRepository
	promotions repository.PromotionRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	employees repository.EmployeeRepository,
	salaries repository.SalaryRepository,
	promotions repository.PromotionRepository,
) error) error {
	return fn(r.employees, r.salaries, r.promotions)
}

// captureDispatcher records published events.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
