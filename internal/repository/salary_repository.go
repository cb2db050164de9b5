package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
)

// SalaryRepository encapsulates salary persistence. Rows are addressed by the
// owning employee since the relation is one-to-one.
type SalaryRepository interface {
	Create(ctx context.Context, salary *domain.Salary) error
	Update(ctx context.Context, salary *domain.Salary) error
	GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.Salary, error)
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
}

type salaryRepository struct {
	db DB
}

// NewSalaryRepository instantiates the repository.
func NewSalaryRepository(db DB) SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) Create(ctx context.Context, salary *domain.Salary) error {
	const query = `
        INSERT INTO salaries (employee_id, base_salary, special_allowance, bonus, last_increment)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`
	return r.db.QueryRow(ctx, query,
		salary.EmployeeID,
		salary.BaseSalary,
		salary.SpecialAllowance,
		salary.Bonus,
		salary.LastIncrement,
	).Scan(&salary.ID)
}

func (r *salaryRepository) Update(ctx context.Context, salary *domain.Salary) error {
	const query = `
        UPDATE salaries SET base_salary=$1, special_allowance=$2, bonus=$3, last_increment=$4
        WHERE employee_id=$5`
	cmd, err := r.db.Exec(ctx, query,
		salary.BaseSalary,
		salary.SpecialAllowance,
		salary.Bonus,
		salary.LastIncrement,
		salary.EmployeeID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *salaryRepository) GetByEmployeeID(ctx context.Context, employeeID int64) (*domain.Salary, error) {
	const query = `
        SELECT id, employee_id, base_salary, special_allowance, bonus, last_increment
        FROM salaries WHERE employee_id=$1`

	var salary domain.Salary
	if err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&salary.ID,
		&salary.EmployeeID,
		&salary.BaseSalary,
		&salary.SpecialAllowance,
		&salary.Bonus,
		&salary.LastIncrement,
	); err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *salaryRepository) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM salaries WHERE employee_id=$1`, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
