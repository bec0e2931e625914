// Package catalog wraps the product repository with edit-time validation
// and the shelf-price recalculation rule.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
	productrepo "nexuspos/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByBarcode serves the scanner flow: the returned product is the snapshot
// the cart captures.
func (s *Service) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	code := strings.TrimSpace(barcode)
	if code == "" {
		return nil, errors.New("barcode required")
	}
	return s.repo.GetByBarcode(ctx, code)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, errors.New("id required")
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p *domain.Product) error {
	p.Barcode = strings.TrimSpace(p.Barcode)
	p.Name = strings.TrimSpace(p.Name)
	if p.Barcode == "" {
		return errors.New("barcode required")
	}
	if p.Name == "" {
		return errors.New("name required")
	}
	if p.Price.IsNegative() || p.MRP.IsNegative() || p.Cost.IsNegative() {
		return errors.New("prices must not be negative")
	}
	if p.TaxRate.IsNegative() {
		return errors.New("tax rate must not be negative")
	}
	if p.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// PriceField names which of the three coupled price fields was edited.
type PriceField string

const (
	FieldMRP          PriceField = "mrp"
	FieldPrice        PriceField = "price"
	FieldDiscountRate PriceField = "discountRate"
)

// PriceValues is the mutually dependent trio shown in the product editor.
type PriceValues struct {
	MRP          decimal.Decimal `json:"mrp"`
	Price        decimal.Decimal `json:"price"`
	DiscountRate decimal.Decimal `json:"discountRate"`
}

var hundred = decimal.NewFromInt(100)

// Recalculate applies the editor's priority rule: editing the discount rate
// (or the MRP while a rate is set) derives the price from the MRP; editing
// the price derives the discount rate from the MRP. Values untouched by the
// rule pass through unchanged.
func Recalculate(changed PriceField, v PriceValues) PriceValues {
	out := v
	switch changed {
	case FieldMRP:
		if v.MRP.IsPositive() {
			if v.DiscountRate.IsPositive() {
				out.Price = priceFromMRP(v.MRP, v.DiscountRate)
			} else if v.Price.IsPositive() {
				out.DiscountRate = rateFromMRP(v.MRP, v.Price)
			}
		}
	case FieldDiscountRate:
		if v.MRP.IsPositive() {
			out.Price = priceFromMRP(v.MRP, v.DiscountRate)
		}
	case FieldPrice:
		if v.MRP.IsPositive() {
			out.DiscountRate = rateFromMRP(v.MRP, v.Price)
		}
	}
	return out
}

func priceFromMRP(mrp, rate decimal.Decimal) decimal.Decimal {
	return mrp.Mul(hundred.Sub(rate)).Div(hundred).Round(2)
}

func rateFromMRP(mrp, price decimal.Decimal) decimal.Decimal {
	return mrp.Sub(price).Mul(hundred).Div(mrp).Round(2)
}
