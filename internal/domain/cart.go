package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine holds a frozen snapshot of the product taken when it was added.
// Catalog edits after that point do not reach an open cart; only checkout
// re-reads the catalog, and only for stock.
type CartLine struct {
	ProductID    string          `json:"productId"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitCost     decimal.Decimal `json:"-"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Quantity     int             `json:"quantity"`
	UnitDiscount decimal.Decimal `json:"unitDiscount"`
	AddedAt      time.Time       `json:"addedAt"`
}

// Cart is the mutable in-progress order for one register.
type Cart struct {
	Register string     `json:"register"`
	Lines    []CartLine `json:"lines"`
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// ManualDiscountKind selects how a manual discount value is interpreted.
type ManualDiscountKind string

const (
	ManualAmount  ManualDiscountKind = "amount"
	ManualPercent ManualDiscountKind = "percent"
)

type ManualDiscount struct {
	Kind  ManualDiscountKind `json:"kind"`
	Value decimal.Decimal    `json:"value"`
}

// DiscountSelections carries the per-transaction discount choices. Coupon and
// Scheme are resolved copies captured at apply time, so a later edit or
// deactivation in the registry does not change an in-progress cart.
type DiscountSelections struct {
	Coupon      *Coupon         `json:"coupon,omitempty"`
	Scheme      *GroupScheme    `json:"scheme,omitempty"`
	GroupActive bool            `json:"groupActive"`
	Manual      *ManualDiscount `json:"manual,omitempty"`
}
