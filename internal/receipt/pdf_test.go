package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

func sampleSale() domain.Sale {
	return domain.Sale{
		ID:            "7b8e0a32-6f5d-4f2a-9f37-1f0f3a1c2d3e",
		CreatedAt:     time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		CustomerName:  "Walk-in",
		PaymentMethod: domain.PayCash,
		Subtotal:      decimal.RequireFromString("300"),
		TaxTotal:      decimal.RequireFromString("54"),
		DiscountTotal: decimal.RequireFromString("30"),
		GrandTotal:    decimal.RequireFromString("324"),
		Lines: []domain.SaleLine{
			{Name: "Espresso", UnitPrice: decimal.RequireFromString("150"), Quantity: 2},
		},
		Discounts: domain.DiscountDetail{
			CouponCode:   "TEN",
			CouponAmount: decimal.RequireFromString("30"),
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer("test-key")
	out, err := r.Render(sampleSale(), domain.StoreSettings{
		StoreName:  "Nexus Coffee & Co",
		Currency:   "INR",
		Address:    "123 Tech Park",
		FooterText: "Thank you for visiting!",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:8])
	}
}

func TestQRPayloadRoundTrip(t *testing.T) {
	r := NewRenderer("test-key")
	sale := sampleSale()

	payload := r.QRPayload(sale)
	id, ok := r.Verify(payload)
	if !ok {
		t.Fatalf("payload failed verification")
	}
	if id != sale.ID {
		t.Fatalf("verified id = %s, want %s", id, sale.ID)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	r := NewRenderer("test-key")
	payload := r.QRPayload(sampleSale())

	if _, ok := r.Verify(payload + "x"); ok {
		t.Fatalf("tampered payload must fail")
	}
	if _, ok := NewRenderer("other-key").Verify(payload); ok {
		t.Fatalf("payload signed with another key must fail")
	}
	if _, ok := r.Verify("garbage"); ok {
		t.Fatalf("malformed payload must fail")
	}
}
