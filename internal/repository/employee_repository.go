package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EmployeeRepository encapsulates employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db DB
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, age, position, department_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.db.QueryRow(ctx, query,
		emp.Name,
		emp.Age,
		emp.Position,
		emp.DepartmentID,
	).Scan(&emp.ID)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET name=$1, age=$2, position=$3, department_id=$4
        WHERE id=$5`
	cmd, err := r.db.Exec(ctx, query,
		emp.Name,
		emp.Age,
		emp.Position,
		emp.DepartmentID,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, name, age, position, department_id
        FROM employees WHERE id=$1`

	var emp domain.Employee
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Age,
		&emp.Position,
		&emp.DepartmentID,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, age, position, department_id
        FROM employees ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Age, &emp.Position, &emp.DepartmentID); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
