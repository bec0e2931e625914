package sale

import (
	"context"
	"time"

	"nexuspos/internal/domain"
)

// Repository persists committed sales. Commit is the only write and is
// all-or-nothing: the sale insert and every stock decrement happen in one
// transaction or not at all.
type Repository interface {
	Commit(ctx context.Context, s domain.Sale) (*domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}
