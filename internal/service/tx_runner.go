package service

import (
	"context"

	"github.com/spec-kit/employee-service/internal/repository"
)

// TxRunner executes a callback with repositories bound to a single
// transaction. Satisfied by repository.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		employees repository.EmployeeRepository,
		salaries repository.SalaryRepository,
		promotions repository.PromotionRepository,
	) error) error
}
