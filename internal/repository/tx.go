package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner executes callbacks inside a single database transaction with
// repositories bound to that transaction. Multi-write operations (promotion
// creation, employee cascade deletion) must commit or roll back as one unit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the shared pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, invokes fn with tx-bound repositories and commits
// on success. Rollback is guaranteed on every other exit path.
func (r *TxRunner) Run(ctx context.Context, fn func(
	employees EmployeeRepository,
	salaries SalaryRepository,
	promotions PromotionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewEmployeeRepository(tx),
		NewSalaryRepository(tx),
		NewPromotionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
