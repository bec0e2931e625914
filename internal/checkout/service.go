// Package checkout converts a priced cart into a durable sale. A checkout
// attempt either commits fully (sale persisted, stock decremented, cart
// reset) or leaves everything exactly as it was.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nexuspos/internal/cart"
	"nexuspos/internal/domain"
	"nexuspos/internal/pricing"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type saleRepo interface {
	Commit(ctx context.Context, s domain.Sale) (*domain.Sale, error)
}

type Service struct {
	carts    *cart.Store
	products productRepo
	sales    saleRepo
	logger   zerolog.Logger
}

func New(carts *cart.Store, products productRepo, sales saleRepo, logger zerolog.Logger) *Service {
	return &Service{
		carts:    carts,
		products: products,
		sales:    sales,
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// Preview recomputes the full breakdown for the register's current cart and
// selections. It never fails; invalid selections contribute zero.
func (s *Service) Preview(register string) domain.Breakdown {
	c := s.carts.Get(register)
	return pricing.Compute(c.Lines, s.carts.Selections(register))
}

// Commit validates stock, persists the sale atomically, and resets the
// register. On any failure the cart, selections, and stock are untouched and
// the cause is returned.
func (s *Service) Commit(ctx context.Context, register string, method domain.PaymentMethod, customerName string) (*domain.Sale, error) {
	c := s.carts.Get(register)
	if c.Empty() {
		return nil, domain.ErrEmptyCart
	}
	if !method.Valid() {
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}

	sel := s.carts.Selections(register)
	breakdown := pricing.Compute(c.Lines, sel)

	// Fast-fail stock check before touching storage. The sale repository
	// re-checks under row locks, so this is a courtesy, not the guarantee.
	for _, line := range c.Lines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.InsufficientStockError{
					ProductID: line.ProductID,
					Name:      line.Name,
					Requested: line.Quantity,
					Available: 0,
				}
			}
			return nil, fmt.Errorf("validate stock for %s: %w", line.Name, err)
		}
		if p.Stock < line.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: line.Quantity,
				Available: p.Stock,
			}
		}
	}

	committed, err := s.sales.Commit(ctx, buildSale(c, sel, breakdown, method, customerName))
	if err != nil {
		s.logger.Warn().Err(err).Str("register", register).Msg("checkout aborted")
		return nil, err
	}

	s.carts.Reset(register)
	s.logger.Info().
		Str("register", register).
		Str("sale_id", committed.ID).
		Str("total", committed.GrandTotal.String()).
		Msg("checkout committed")
	return committed, nil
}

// buildSale deep-copies the cart into an immutable sale whose stored totals
// are the breakdown's totals at commit time. The sale id is minted here so
// the receipt number exists before the insert. Per-mechanism detail is
// recorded only for mechanisms that actually contributed.
func buildSale(c domain.Cart, sel domain.DiscountSelections, b domain.Breakdown, method domain.PaymentMethod, customerName string) domain.Sale {
	lines := make([]domain.SaleLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, domain.SaleLine{
			ProductID:    l.ProductID,
			Barcode:      l.Barcode,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice,
			UnitCost:     l.UnitCost,
			TaxRate:      l.TaxRate,
			Quantity:     l.Quantity,
			UnitDiscount: l.UnitDiscount,
		})
	}

	detail := domain.DiscountDetail{
		ItemAmount:   b.ItemDiscount,
		CouponAmount: b.CouponDiscount,
		GroupAmount:  b.GroupDiscount,
		ManualAmount: b.ManualDiscount,
	}
	if sel.Coupon != nil && b.CouponDiscount.IsPositive() {
		detail.CouponCode = sel.Coupon.Code
	}
	if sel.Scheme != nil && b.GroupDiscount.IsPositive() {
		detail.SchemeName = sel.Scheme.Name
	}

	return domain.Sale{
		ID:            uuid.NewString(),
		CustomerName:  customerName,
		Lines:         lines,
		Subtotal:      b.Subtotal,
		TaxTotal:      b.TaxTotal,
		DiscountTotal: b.DiscountTotal,
		GrandTotal:    b.GrandTotal,
		PaymentMethod: method,
		Discounts:     detail,
	}
}
