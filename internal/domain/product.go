package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is the selling price; MRP and
// DiscountRate describe the printed-price markdown shown on shelf labels.
type Product struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	MRP          decimal.Decimal `json:"mrp"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	Cost         decimal.Decimal `json:"cost"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Stock        int             `json:"stock"`
	CreatedAt    time.Time       `json:"createdAt"`
}
