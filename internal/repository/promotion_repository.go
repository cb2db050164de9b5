package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
)

// PromotionRepository encapsulates promotion history persistence.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *domain.Promotion) error
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
}

type promotionRepository struct {
	db DB
}

// NewPromotionRepository instantiates the repository.
func NewPromotionRepository(db DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	const query = `
        INSERT INTO promotions (employee_id, promotion_date, new_position)
        VALUES ($1,$2,$3)
        RETURNING id`
	return r.db.QueryRow(ctx, query,
		promotion.EmployeeID,
		promotion.PromotionDate,
		promotion.NewPosition,
	).Scan(&promotion.ID)
}

func (r *promotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	const query = `
        SELECT id, employee_id, promotion_date, new_position
        FROM promotions WHERE id=$1`

	var promotion domain.Promotion
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&promotion.ID,
		&promotion.EmployeeID,
		&promotion.PromotionDate,
		&promotion.NewPosition,
	); err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	const query = `
        SELECT id, employee_id, promotion_date, new_position
        FROM promotions ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Promotion
	for rows.Next() {
		var promotion domain.Promotion
		if err := rows.Scan(&promotion.ID, &promotion.EmployeeID, &promotion.PromotionDate, &promotion.NewPosition); err != nil {
			return nil, err
		}
		result = append(result, promotion)
	}
	return result, rows.Err()
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByEmployeeID removes all history rows for an employee. Zero affected
// rows is not an error; employees without promotions are common.
func (r *promotionRepository) DeleteByEmployeeID(ctx context.Context, employeeID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE employee_id=$1`, employeeID)
	return err
}
