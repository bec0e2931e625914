// Package cart holds the in-progress order state for each register. A
// register is a single logical actor: the UI mutates its cart sequentially,
// and every mutation is followed by a full breakdown recompute. The store
// guards the map so separate registers can live in one process.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

var (
	ErrLineNotFound     = errors.New("cart line not found")
	ErrNegativeDiscount = errors.New("discount must not be negative")
)

type till struct {
	cart       domain.Cart
	selections domain.DiscountSelections
}

type Store struct {
	mu    sync.RWMutex
	tills map[string]*till
}

func NewStore() *Store {
	return &Store{tills: make(map[string]*till)}
}

func (s *Store) till(register string) *till {
	t, ok := s.tills[register]
	if !ok {
		t = &till{cart: domain.Cart{Register: register}}
		s.tills[register] = t
	}
	return t
}

// Get returns a copy of the register's cart. Callers never see the store's
// internal slice.
func (s *Store) Get(register string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tills[register]
	if !ok {
		return domain.Cart{Register: register}
	}
	return copyCart(t.cart)
}

// Selections returns a copy of the register's discount selections.
func (s *Store) Selections(register string) domain.DiscountSelections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tills[register]
	if !ok {
		return domain.DiscountSelections{}
	}
	return copySelections(t.selections)
}

// Add puts a product in the cart, capturing a frozen snapshot of its price,
// cost, tax rate, and name. Adding the same product again only raises the
// quantity; the original snapshot stays.
func (s *Store) Add(register string, p domain.Product, qty int) domain.Cart {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	for i := range t.cart.Lines {
		if t.cart.Lines[i].ProductID == p.ID {
			t.cart.Lines[i].Quantity += qty
			return copyCart(t.cart)
		}
	}
	t.cart.Lines = append(t.cart.Lines, domain.CartLine{
		ProductID:    p.ID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		UnitPrice:    p.Price,
		UnitCost:     p.Cost,
		TaxRate:      p.TaxRate,
		Quantity:     qty,
		UnitDiscount: decimal.Zero,
		AddedAt:      time.Now().UTC(),
	})
	return copyCart(t.cart)
}

// ChangeQuantity adjusts a line's quantity by delta. Decrementing floors at
// one; removal is a separate explicit action.
func (s *Store) ChangeQuantity(register, productID string, delta int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	for i := range t.cart.Lines {
		if t.cart.Lines[i].ProductID != productID {
			continue
		}
		next := t.cart.Lines[i].Quantity + delta
		if next < 1 {
			next = 1
		}
		t.cart.Lines[i].Quantity = next
		return copyCart(t.cart), nil
	}
	return domain.Cart{}, ErrLineNotFound
}

// SetUnitDiscount sets the per-unit discount on a line. Negative values are
// rejected at this edge so pricing never has to.
func (s *Store) SetUnitDiscount(register, productID string, value decimal.Decimal) (domain.Cart, error) {
	if value.IsNegative() {
		return domain.Cart{}, ErrNegativeDiscount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	for i := range t.cart.Lines {
		if t.cart.Lines[i].ProductID == productID {
			t.cart.Lines[i].UnitDiscount = value
			return copyCart(t.cart), nil
		}
	}
	return domain.Cart{}, ErrLineNotFound
}

// Remove deletes a line from the cart.
func (s *Store) Remove(register, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	for i := range t.cart.Lines {
		if t.cart.Lines[i].ProductID == productID {
			t.cart.Lines = append(t.cart.Lines[:i], t.cart.Lines[i+1:]...)
			return copyCart(t.cart), nil
		}
	}
	return domain.Cart{}, ErrLineNotFound
}

// Clear empties the cart but keeps the discount selections.
func (s *Store) Clear(register string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.till(register).cart.Lines = nil
}

// SetCoupon stores a resolved coupon copy for the register.
func (s *Store) SetCoupon(register string, coupon *domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if coupon == nil {
		s.till(register).selections.Coupon = nil
		return
	}
	c := *coupon
	s.till(register).selections.Coupon = &c
}

// SetScheme stores a resolved group scheme copy and its on/off toggle.
func (s *Store) SetScheme(register string, scheme *domain.GroupScheme, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	if scheme == nil {
		t.selections.Scheme = nil
		t.selections.GroupActive = false
		return
	}
	sc := *scheme
	t.selections.Scheme = &sc
	t.selections.GroupActive = active
}

// SetManual stores the manual discount spec. Nil clears it.
func (s *Store) SetManual(register string, manual *domain.ManualDiscount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if manual == nil {
		s.till(register).selections.Manual = nil
		return
	}
	m := *manual
	s.till(register).selections.Manual = &m
}

// Reset clears the cart and every discount selection. Called after a
// successful checkout.
func (s *Store) Reset(register string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	t.cart.Lines = nil
	t.selections = domain.DiscountSelections{}
}

// Restore replaces the register's cart and selections wholesale. The
// checkout path uses it to put back the pre-attempt state if a commit fails
// after the cart was read.
func (s *Store) Restore(register string, cart domain.Cart, sel domain.DiscountSelections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.till(register)
	t.cart = copyCart(cart)
	t.selections = copySelections(sel)
}

func copyCart(c domain.Cart) domain.Cart {
	out := domain.Cart{Register: c.Register}
	if len(c.Lines) > 0 {
		out.Lines = make([]domain.CartLine, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}

func copySelections(sel domain.DiscountSelections) domain.DiscountSelections {
	out := domain.DiscountSelections{GroupActive: sel.GroupActive}
	if sel.Coupon != nil {
		c := *sel.Coupon
		out.Coupon = &c
	}
	if sel.Scheme != nil {
		s := *sel.Scheme
		out.Scheme = &s
	}
	if sel.Manual != nil {
		m := *sel.Manual
		out.Manual = &m
	}
	return out
}
