package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponKind selects how a coupon value is applied to the cart subtotal.
type CouponKind string

const (
	CouponPercent CouponKind = "percent"
	CouponFlat    CouponKind = "flat"
)

type Coupon struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Kind      CouponKind      `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// GroupScheme is a buy-X-get-Y-free promotion. Every complete group of
// BuyQty+GetQty units within a single cart line yields GetQty free units.
type GroupScheme struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BuyQty    int       `json:"buyQty"`
	GetQty    int       `json:"getQty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GroupSize is the number of units that make one complete group.
func (s GroupScheme) GroupSize() int {
	return s.BuyQty + s.GetQty
}
