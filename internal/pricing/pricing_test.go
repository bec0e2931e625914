package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(price string, qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:    "p-" + price,
		Name:         "item",
		UnitPrice:    dec(price),
		TaxRate:      decimal.Zero,
		Quantity:     qty,
		UnitDiscount: decimal.Zero,
	}
}

func TestComputeEmptyCart(t *testing.T) {
	b := Compute(nil, domain.DiscountSelections{})
	for name, v := range map[string]decimal.Decimal{
		"subtotal":      b.Subtotal,
		"discountTotal": b.DiscountTotal,
		"taxTotal":      b.TaxTotal,
		"grandTotal":    b.GrandTotal,
	} {
		if !v.IsZero() {
			t.Fatalf("expected zero %s, got %s", name, v)
		}
	}
}

func TestComputeNoDiscountsEqualsSubtotalPlusTax(t *testing.T) {
	lines := []domain.CartLine{
		{UnitPrice: dec("100"), Quantity: 2, TaxRate: dec("18")},
		{UnitPrice: dec("80"), Quantity: 1, TaxRate: dec("5")},
	}
	b := Compute(lines, domain.DiscountSelections{})

	if !b.Subtotal.Equal(dec("280")) {
		t.Fatalf("subtotal = %s, want 280", b.Subtotal)
	}
	if !b.TaxTotal.Equal(dec("40")) {
		t.Fatalf("taxTotal = %s, want 40", b.TaxTotal)
	}
	if !b.GrandTotal.Equal(b.Subtotal.Add(b.TaxTotal)) {
		t.Fatalf("grandTotal = %s, want subtotal+tax = %s", b.GrandTotal, b.Subtotal.Add(b.TaxTotal))
	}
}

func TestComputeItemLevelDiscount(t *testing.T) {
	l := line("100", 3)
	l.UnitDiscount = dec("10")
	b := Compute([]domain.CartLine{l}, domain.DiscountSelections{})

	if !b.ItemDiscount.Equal(dec("30")) {
		t.Fatalf("itemDiscount = %s, want 30", b.ItemDiscount)
	}
	if !b.GrandTotal.Equal(dec("270")) {
		t.Fatalf("grandTotal = %s, want 270", b.GrandTotal)
	}
}

func TestComputeCouponPercentOfSubtotal(t *testing.T) {
	b := Compute([]domain.CartLine{line("100", 5)}, domain.DiscountSelections{
		Coupon: &domain.Coupon{Code: "SAVE10", Kind: domain.CouponPercent, Value: dec("10"), Active: true},
	})
	if !b.CouponDiscount.Equal(dec("50")) {
		t.Fatalf("couponDiscount = %s, want 50", b.CouponDiscount)
	}
}

func TestComputeCouponFlat(t *testing.T) {
	b := Compute([]domain.CartLine{line("100", 5)}, domain.DiscountSelections{
		Coupon: &domain.Coupon{Code: "FLAT75", Kind: domain.CouponFlat, Value: dec("75"), Active: true},
	})
	if !b.CouponDiscount.Equal(dec("75")) {
		t.Fatalf("couponDiscount = %s, want 75", b.CouponDiscount)
	}
}

func TestComputeInactiveCouponContributesNothing(t *testing.T) {
	b := Compute([]domain.CartLine{line("100", 5)}, domain.DiscountSelections{
		Coupon: &domain.Coupon{Code: "OLD", Kind: domain.CouponFlat, Value: dec("75"), Active: false},
	})
	if !b.CouponDiscount.IsZero() {
		t.Fatalf("couponDiscount = %s, want 0", b.CouponDiscount)
	}
}

func TestComputeGroupDiscountStepFunction(t *testing.T) {
	scheme := &domain.GroupScheme{Name: "Buy 2 Get 1 Free", BuyQty: 2, GetQty: 1}

	cases := []struct {
		qty  int
		want string
	}{
		{1, "0"},
		{2, "0"},
		{3, "100"},
		{5, "100"},
		{6, "200"},
		{8, "200"},
		{9, "300"},
	}
	for _, tc := range cases {
		b := Compute([]domain.CartLine{line("100", tc.qty)}, domain.DiscountSelections{
			Scheme:      scheme,
			GroupActive: true,
		})
		if !b.GroupDiscount.Equal(dec(tc.want)) {
			t.Fatalf("qty %d: groupDiscount = %s, want %s", tc.qty, b.GroupDiscount, tc.want)
		}
	}
}

func TestComputeGroupDiscountPerLine(t *testing.T) {
	scheme := &domain.GroupScheme{Name: "BOGO", BuyQty: 1, GetQty: 1}
	lines := []domain.CartLine{line("100", 2), line("40", 3)}
	b := Compute(lines, domain.DiscountSelections{Scheme: scheme, GroupActive: true})

	// 100 for the first line's one group, 40 for the second's.
	if !b.GroupDiscount.Equal(dec("140")) {
		t.Fatalf("groupDiscount = %s, want 140", b.GroupDiscount)
	}
}

func TestComputeGroupDiscountIgnoredWhenToggleOff(t *testing.T) {
	scheme := &domain.GroupScheme{Name: "BOGO", BuyQty: 1, GetQty: 1}
	b := Compute([]domain.CartLine{line("100", 4)}, domain.DiscountSelections{Scheme: scheme})
	if !b.GroupDiscount.IsZero() {
		t.Fatalf("groupDiscount = %s, want 0 with toggle off", b.GroupDiscount)
	}
}

func TestComputeManualDiscount(t *testing.T) {
	lines := []domain.CartLine{line("100", 5)}

	amount := Compute(lines, domain.DiscountSelections{
		Manual: &domain.ManualDiscount{Kind: domain.ManualAmount, Value: dec("25")},
	})
	if !amount.ManualDiscount.Equal(dec("25")) {
		t.Fatalf("manualDiscount = %s, want 25", amount.ManualDiscount)
	}

	percent := Compute(lines, domain.DiscountSelections{
		Manual: &domain.ManualDiscount{Kind: domain.ManualPercent, Value: dec("20")},
	})
	if !percent.ManualDiscount.Equal(dec("100")) {
		t.Fatalf("manualDiscount = %s, want 100", percent.ManualDiscount)
	}
}

func TestComputeNegativeManualDegradesToZero(t *testing.T) {
	b := Compute([]domain.CartLine{line("100", 1)}, domain.DiscountSelections{
		Manual: &domain.ManualDiscount{Kind: domain.ManualAmount, Value: dec("-5")},
	})
	if !b.ManualDiscount.IsZero() {
		t.Fatalf("manualDiscount = %s, want 0", b.ManualDiscount)
	}
}

func TestComputeDiscountsAreAdditiveNotCompounding(t *testing.T) {
	// Two 10% discounts on a 500 subtotal must each take 50, not 50 then 45.
	b := Compute([]domain.CartLine{line("100", 5)}, domain.DiscountSelections{
		Coupon: &domain.Coupon{Code: "TEN", Kind: domain.CouponPercent, Value: dec("10"), Active: true},
		Manual: &domain.ManualDiscount{Kind: domain.ManualPercent, Value: dec("10")},
	})
	if !b.CouponDiscount.Equal(dec("50")) || !b.ManualDiscount.Equal(dec("50")) {
		t.Fatalf("coupon = %s, manual = %s, want 50 each", b.CouponDiscount, b.ManualDiscount)
	}
	if !b.DiscountTotal.Equal(dec("100")) {
		t.Fatalf("discountTotal = %s, want 100", b.DiscountTotal)
	}
}

func TestComputeTaxOnGrossUnaffectedByDiscounts(t *testing.T) {
	l := domain.CartLine{UnitPrice: dec("100"), Quantity: 2, TaxRate: dec("18"), UnitDiscount: dec("50")}
	b := Compute([]domain.CartLine{l}, domain.DiscountSelections{
		Manual: &domain.ManualDiscount{Kind: domain.ManualAmount, Value: dec("90")},
	})
	if !b.TaxTotal.Equal(dec("36")) {
		t.Fatalf("taxTotal = %s, want 36 regardless of discounts", b.TaxTotal)
	}
}

func TestComputeGrandTotalClampedAtZero(t *testing.T) {
	b := Compute([]domain.CartLine{line("10", 1)}, domain.DiscountSelections{
		Coupon: &domain.Coupon{Code: "HUGE", Kind: domain.CouponFlat, Value: dec("9999"), Active: true},
	})
	if !b.GrandTotal.IsZero() {
		t.Fatalf("grandTotal = %s, want 0", b.GrandTotal)
	}
	if b.GrandTotal.IsNegative() {
		t.Fatalf("grandTotal must never be negative")
	}
}

func TestComputeIdempotent(t *testing.T) {
	lines := []domain.CartLine{line("99.99", 3), line("0.01", 7)}
	sel := domain.DiscountSelections{
		Coupon:      &domain.Coupon{Code: "TEN", Kind: domain.CouponPercent, Value: dec("10"), Active: true},
		Scheme:      &domain.GroupScheme{Name: "BOGO", BuyQty: 1, GetQty: 1},
		GroupActive: true,
		Manual:      &domain.ManualDiscount{Kind: domain.ManualAmount, Value: dec("5")},
	}
	first := Compute(lines, sel)
	second := Compute(lines, sel)

	if !first.GrandTotal.Equal(second.GrandTotal) || !first.DiscountTotal.Equal(second.DiscountTotal) {
		t.Fatalf("repeated computation diverged: %+v vs %+v", first, second)
	}
}

func TestRoundedIsPresentationOnly(t *testing.T) {
	b := Compute([]domain.CartLine{line("33.335", 1)}, domain.DiscountSelections{})
	if !b.Subtotal.Equal(dec("33.335")) {
		t.Fatalf("intermediate value must keep full precision, got %s", b.Subtotal)
	}
	if !b.Rounded().Subtotal.Equal(dec("33.34")) {
		t.Fatalf("rounded subtotal = %s, want 33.34", b.Rounded().Subtotal)
	}
}
