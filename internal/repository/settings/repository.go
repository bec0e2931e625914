package settings

import (
	"context"

	"nexuspos/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	Save(ctx context.Context, s domain.StoreSettings) (*domain.StoreSettings, error)
}
