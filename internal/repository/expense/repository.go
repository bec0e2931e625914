package expense

import (
	"context"
	"time"

	"nexuspos/internal/domain"
)

type Repository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
	Create(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}
