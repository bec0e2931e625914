package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is a label, not a protocol. Settlement happens outside the
// system.
type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayUPI:
		return true
	}
	return false
}

// SaleLine is the committed copy of a cart line. UnitCost is retained for
// profit reporting and never rendered on receipts.
type SaleLine struct {
	ProductID    string          `json:"productId"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitCost     decimal.Decimal `json:"-"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Quantity     int             `json:"quantity"`
	UnitDiscount decimal.Decimal `json:"unitDiscount"`
}

// DiscountDetail records the per-mechanism amounts that made up
// DiscountTotal, for receipt reproduction.
type DiscountDetail struct {
	ItemAmount   decimal.Decimal `json:"itemAmount"`
	CouponCode   string          `json:"couponCode,omitempty"`
	CouponAmount decimal.Decimal `json:"couponAmount"`
	SchemeName   string          `json:"schemeName,omitempty"`
	GroupAmount  decimal.Decimal `json:"groupAmount"`
	ManualAmount decimal.Decimal `json:"manualAmount"`
}

// Sale is the immutable result of a committed checkout. Stored totals are
// the totals; they are never recomputed from the lines after commit.
type Sale struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	CustomerName  string          `json:"customerName,omitempty"`
	Lines         []SaleLine      `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Discounts     DiscountDetail  `json:"discounts"`
}
