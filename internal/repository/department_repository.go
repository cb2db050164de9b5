package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db DB
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name, description)
        VALUES ($1,$2)
        RETURNING id`
	return r.db.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
	).Scan(&dept.ID)
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `
        UPDATE departments SET name=$1, description=$2
        WHERE id=$3`
	cmd, err := r.db.Exec(ctx, query,
		dept.Name,
		dept.Description,
		dept.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	const query = `
        SELECT id, name, description
        FROM departments WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	const query = `
        SELECT id, name, description
        FROM departments WHERE name=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, name))
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = `
        SELECT id, name, description
        FROM departments ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Description); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) scanOne(row pgx.Row) (*domain.Department, error) {
	var dept domain.Department
	if err := row.Scan(&dept.ID, &dept.Name, &dept.Description); err != nil {
		return nil, err
	}
	return &dept, nil
}
