package promotion

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

type stubRepo struct {
	coupon *domain.Coupon
	scheme *domain.GroupScheme
	err    error

	createdCoupon *domain.Coupon
	createdScheme *domain.GroupScheme
}

func (s *stubRepo) GetCouponByCode(_ context.Context, _ string) (*domain.Coupon, error) {
	return s.coupon, s.err
}
func (s *stubRepo) ListCoupons(_ context.Context) ([]domain.Coupon, error) { return nil, s.err }
func (s *stubRepo) CreateCoupon(_ context.Context, c domain.Coupon) (*domain.Coupon, error) {
	s.createdCoupon = &c
	return &c, s.err
}
func (s *stubRepo) DeleteCoupon(_ context.Context, _ string) error { return s.err }
func (s *stubRepo) GetScheme(_ context.Context, _ string) (*domain.GroupScheme, error) {
	return s.scheme, s.err
}
func (s *stubRepo) ListSchemes(_ context.Context) ([]domain.GroupScheme, error) { return nil, s.err }
func (s *stubRepo) CreateScheme(_ context.Context, sc domain.GroupScheme) (*domain.GroupScheme, error) {
	s.createdScheme = &sc
	return &sc, s.err
}
func (s *stubRepo) DeleteScheme(_ context.Context, _ string) error { return s.err }

func TestResolveCouponActive(t *testing.T) {
	svc := New(&stubRepo{coupon: &domain.Coupon{Code: "TEN", Active: true}})
	c, err := svc.ResolveCoupon(context.Background(), " TEN ")
	if err != nil {
		t.Fatalf("ResolveCoupon: %v", err)
	}
	if c.Code != "TEN" {
		t.Fatalf("unexpected coupon %+v", c)
	}
}

func TestResolveCouponInactive(t *testing.T) {
	svc := New(&stubRepo{coupon: &domain.Coupon{Code: "OLD", Active: false}})
	if _, err := svc.ResolveCoupon(context.Background(), "OLD"); !errors.Is(err, ErrCouponInactive) {
		t.Fatalf("expected ErrCouponInactive, got %v", err)
	}
}

func TestResolveCouponBlankCode(t *testing.T) {
	svc := New(&stubRepo{})
	if _, err := svc.ResolveCoupon(context.Background(), "  "); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateCouponValidation(t *testing.T) {
	svc := New(&stubRepo{})

	if _, err := svc.CreateCoupon(context.Background(), domain.Coupon{Kind: domain.CouponFlat}); err == nil {
		t.Fatalf("expected error for missing code")
	}
	if _, err := svc.CreateCoupon(context.Background(), domain.Coupon{Code: "X", Kind: "weird"}); err == nil {
		t.Fatalf("expected error for bad kind")
	}
	if _, err := svc.CreateCoupon(context.Background(), domain.Coupon{
		Code: "X", Kind: domain.CouponFlat, Value: decimal.RequireFromString("-1"),
	}); err == nil {
		t.Fatalf("expected error for negative value")
	}
}

func TestCreateSchemeValidation(t *testing.T) {
	svc := New(&stubRepo{})
	if _, err := svc.CreateScheme(context.Background(), domain.GroupScheme{Name: "B", BuyQty: 0, GetQty: 1}); err == nil {
		t.Fatalf("expected error for zero buyQty")
	}
	if _, err := svc.CreateScheme(context.Background(), domain.GroupScheme{Name: " ", BuyQty: 1, GetQty: 1}); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestResolveSchemeRejectsMalformed(t *testing.T) {
	svc := New(&stubRepo{scheme: &domain.GroupScheme{ID: "s1", Name: "Broken", BuyQty: 0, GetQty: 1}})
	if _, err := svc.ResolveScheme(context.Background(), "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed scheme, got %v", err)
	}
}
