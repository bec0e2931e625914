package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubRepo struct {
	created   *domain.Product
	byBarcode *domain.Product
	err       error
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) { return nil, s.err }
func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, s.err
}
func (s *stubRepo) GetByBarcode(_ context.Context, _ string) (*domain.Product, error) {
	return s.byBarcode, s.err
}
func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.created = &p
	return &p, s.err
}
func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, s.err
}
func (s *stubRepo) Delete(_ context.Context, _ string) error { return s.err }
func (s *stubRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, s.err
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{})

	cases := []struct {
		name string
		p    domain.Product
	}{
		{"missing barcode", domain.Product{Name: "X", Price: dec("1")}},
		{"missing name", domain.Product{Barcode: "1", Price: dec("1")}},
		{"negative price", domain.Product{Barcode: "1", Name: "X", Price: dec("-1")}},
		{"negative stock", domain.Product{Barcode: "1", Name: "X", Price: dec("1"), Stock: -1}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.p); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateTrimsFields(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	_, err := svc.Create(context.Background(), domain.Product{Barcode: " 1001 ", Name: " Espresso ", Price: dec("150")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created.Barcode != "1001" || repo.created.Name != "Espresso" {
		t.Fatalf("fields not trimmed: %+v", repo.created)
	}
}

func TestGetByBarcodeRequiresCode(t *testing.T) {
	svc := New(&stubRepo{})
	if _, err := svc.GetByBarcode(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank barcode")
	}
}

func TestRecalculateDiscountRateDerivesPrice(t *testing.T) {
	out := Recalculate(FieldDiscountRate, PriceValues{MRP: dec("200"), DiscountRate: dec("25")})
	if !out.Price.Equal(dec("150")) {
		t.Fatalf("price = %s, want 150", out.Price)
	}
}

func TestRecalculatePriceDerivesDiscountRate(t *testing.T) {
	out := Recalculate(FieldPrice, PriceValues{MRP: dec("200"), Price: dec("150")})
	if !out.DiscountRate.Equal(dec("25")) {
		t.Fatalf("discountRate = %s, want 25", out.DiscountRate)
	}
}

func TestRecalculateMRPPrefersExistingRate(t *testing.T) {
	// With a rate already set, editing MRP re-derives the price.
	out := Recalculate(FieldMRP, PriceValues{MRP: dec("300"), Price: dec("150"), DiscountRate: dec("20")})
	if !out.Price.Equal(dec("240")) {
		t.Fatalf("price = %s, want 240", out.Price)
	}
	if !out.DiscountRate.Equal(dec("20")) {
		t.Fatalf("discountRate must be unchanged, got %s", out.DiscountRate)
	}
}

func TestRecalculateMRPFallsBackToPrice(t *testing.T) {
	// Without a rate, editing MRP derives the rate from the existing price.
	out := Recalculate(FieldMRP, PriceValues{MRP: dec("200"), Price: dec("150")})
	if !out.DiscountRate.Equal(dec("25")) {
		t.Fatalf("discountRate = %s, want 25", out.DiscountRate)
	}
}

func TestRecalculateWithoutMRPKeepsValues(t *testing.T) {
	in := PriceValues{Price: dec("99")}
	out := Recalculate(FieldPrice, in)
	if !out.Price.Equal(dec("99")) || !out.DiscountRate.IsZero() {
		t.Fatalf("values must pass through unchanged: %+v", out)
	}
}
