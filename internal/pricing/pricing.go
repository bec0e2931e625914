// Package pricing computes the financial breakdown for a cart. Compute is a
// pure function: it never fails and never touches catalog, cart, or
// promotion state, so a preview is always available even with incomplete or
// invalid discount selections.
package pricing

import (
	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Compute derives the breakdown from the cart lines and discount selections.
// Discounts are additive on the base subtotal, not compounding on each
// other. Tax is computed on the gross line value, unaffected by discounts.
// The grand total is clamped at zero.
func Compute(lines []domain.CartLine, sel domain.DiscountSelections) domain.Breakdown {
	b := domain.Breakdown{
		Subtotal:       decimal.Zero,
		ItemDiscount:   decimal.Zero,
		CouponDiscount: decimal.Zero,
		GroupDiscount:  decimal.Zero,
		ManualDiscount: decimal.Zero,
		DiscountTotal:  decimal.Zero,
		TaxTotal:       decimal.Zero,
		GrandTotal:     decimal.Zero,
	}

	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		gross := line.UnitPrice.Mul(qty)
		b.Subtotal = b.Subtotal.Add(gross)
		b.ItemDiscount = b.ItemDiscount.Add(lineItemDiscount(line, qty))
		b.TaxTotal = b.TaxTotal.Add(gross.Mul(line.TaxRate).Div(hundred))
	}

	b.CouponDiscount = couponDiscount(sel.Coupon, b.Subtotal)
	b.GroupDiscount = groupDiscount(sel, lines)
	b.ManualDiscount = manualDiscount(sel.Manual, b.Subtotal)

	b.DiscountTotal = b.ItemDiscount.
		Add(b.CouponDiscount).
		Add(b.GroupDiscount).
		Add(b.ManualDiscount)

	total := b.Subtotal.Add(b.TaxTotal).Sub(b.DiscountTotal)
	if total.IsNegative() {
		total = decimal.Zero
	}
	b.GrandTotal = total

	return b
}

func lineItemDiscount(line domain.CartLine, qty decimal.Decimal) decimal.Decimal {
	if line.UnitDiscount.IsNegative() {
		return decimal.Zero
	}
	return line.UnitDiscount.Mul(qty)
}

func couponDiscount(coupon *domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if coupon == nil || !coupon.Active || coupon.Value.IsNegative() {
		return decimal.Zero
	}
	switch coupon.Kind {
	case domain.CouponFlat:
		return coupon.Value
	case domain.CouponPercent:
		return subtotal.Mul(coupon.Value).Div(hundred)
	}
	return decimal.Zero
}

// groupDiscount credits free units per line: every complete group of
// buyQty+getQty units yields getQty units at that line's own price. A line
// below one full group contributes nothing.
func groupDiscount(sel domain.DiscountSelections, lines []domain.CartLine) decimal.Decimal {
	if !sel.GroupActive || sel.Scheme == nil {
		return decimal.Zero
	}
	size := sel.Scheme.GroupSize()
	if sel.Scheme.BuyQty < 1 || sel.Scheme.GetQty < 1 || size < 2 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, line := range lines {
		groups := line.Quantity / size
		if groups == 0 {
			continue
		}
		free := int64(groups * sel.Scheme.GetQty)
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(free)))
	}
	return total
}

func manualDiscount(manual *domain.ManualDiscount, subtotal decimal.Decimal) decimal.Decimal {
	if manual == nil || manual.Value.IsNegative() {
		return decimal.Zero
	}
	switch manual.Kind {
	case domain.ManualAmount:
		return manual.Value
	case domain.ManualPercent:
		return subtotal.Mul(manual.Value).Div(hundred)
	}
	return decimal.Zero
}
