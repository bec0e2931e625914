package promotion

import (
	"context"

	"nexuspos/internal/domain"
)

// Repository is the promotion registry: coupons looked up by code and group
// discount schemes selected by id.
type Repository interface {
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	GetScheme(ctx context.Context, id string) (*domain.GroupScheme, error)
	ListSchemes(ctx context.Context) ([]domain.GroupScheme, error)
	CreateScheme(ctx context.Context, s domain.GroupScheme) (*domain.GroupScheme, error)
	DeleteScheme(ctx context.Context, id string) error
}
