// Package promotion fronts the promotion registry: coupon lookup for the
// register and CRUD for the back office.
package promotion

import (
	"context"
	"errors"
	"strings"

	"nexuspos/internal/domain"
	promorepo "nexuspos/internal/repository/promotion"
)

// ErrCouponInactive is returned when a known coupon code is applied while
// switched off in the registry.
var ErrCouponInactive = errors.New("coupon is not active")

type Service struct {
	repo promorepo.Repository
}

func New(repo promorepo.Repository) *Service {
	return &Service{repo: repo}
}

// ResolveCoupon looks up a coupon for apply-to-cart. Only existence and
// activity are checked here; the pricing engine treats whatever it is handed
// as a frozen copy.
func (s *Service) ResolveCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrNotFound
	}
	c, err := s.repo.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !c.Active {
		return nil, ErrCouponInactive
	}
	return c, nil
}

// ResolveScheme fetches a group scheme for the register's BOGO selector.
func (s *Service) ResolveScheme(ctx context.Context, id string) (*domain.GroupScheme, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	sc, err := s.repo.GetScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if sc.BuyQty < 1 || sc.GetQty < 1 {
		return nil, domain.ErrNotFound
	}
	return sc, nil
}

func (s *Service) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.ListCoupons(ctx)
}

func (s *Service) CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	c.Code = strings.TrimSpace(c.Code)
	if c.Code == "" {
		return nil, errors.New("code required")
	}
	if c.Kind != domain.CouponPercent && c.Kind != domain.CouponFlat {
		return nil, errors.New("kind must be percent or flat")
	}
	if c.Value.IsNegative() {
		return nil, errors.New("value must not be negative")
	}
	return s.repo.CreateCoupon(ctx, c)
}

func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	return s.repo.DeleteCoupon(ctx, id)
}

func (s *Service) ListSchemes(ctx context.Context) ([]domain.GroupScheme, error) {
	return s.repo.ListSchemes(ctx)
}

func (s *Service) CreateScheme(ctx context.Context, sc domain.GroupScheme) (*domain.GroupScheme, error) {
	sc.Name = strings.TrimSpace(sc.Name)
	if sc.Name == "" {
		return nil, errors.New("name required")
	}
	if sc.BuyQty < 1 || sc.GetQty < 1 {
		return nil, errors.New("buyQty and getQty must be at least 1")
	}
	return s.repo.CreateScheme(ctx, sc)
}

func (s *Service) DeleteScheme(ctx context.Context, id string) error {
	return s.repo.DeleteScheme(ctx, id)
}
