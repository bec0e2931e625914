package domain

import "github.com/shopspring/decimal"

// Breakdown is the derived financial summary for a cart. All amounts are
// full-precision; rounding happens only at presentation via Rounded.
type Breakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	ItemDiscount   decimal.Decimal `json:"itemDiscount"`
	CouponDiscount decimal.Decimal `json:"couponDiscount"`
	GroupDiscount  decimal.Decimal `json:"groupDiscount"`
	ManualDiscount decimal.Decimal `json:"manualDiscount"`
	DiscountTotal  decimal.Decimal `json:"discountTotal"`
	TaxTotal       decimal.Decimal `json:"taxTotal"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// Rounded returns a copy with every amount rounded to two decimal places for
// display and receipts.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Subtotal:       b.Subtotal.Round(2),
		ItemDiscount:   b.ItemDiscount.Round(2),
		CouponDiscount: b.CouponDiscount.Round(2),
		GroupDiscount:  b.GroupDiscount.Round(2),
		ManualDiscount: b.ManualDiscount.Round(2),
		DiscountTotal:  b.DiscountTotal.Round(2),
		TaxTotal:       b.TaxTotal.Round(2),
		GrandTotal:     b.GrandTotal.Round(2),
	}
}
