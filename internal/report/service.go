// Package report aggregates committed sales and expenses for the dashboard.
// It only ever reads: sales are the sole source of truth and their stored
// totals are used as-is, never recomputed from lines.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

type saleRepo interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}

type expenseRepo interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error)
}

type Summary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	SaleCount     int             `json:"saleCount"`
	Revenue       decimal.Decimal `json:"revenue"`
	TaxCollected  decimal.Decimal `json:"taxCollected"`
	DiscountGiven decimal.Decimal `json:"discountGiven"`
	CostOfGoods   decimal.Decimal `json:"costOfGoods"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
	Net           decimal.Decimal `json:"net"`
}

type Service struct {
	sales    saleRepo
	expenses expenseRepo
}

func New(sales saleRepo, expenses expenseRepo) *Service {
	return &Service{sales: sales, expenses: expenses}
}

// Summarize totals the period [from, to). Cost of goods comes from the unit
// costs frozen into each sale line at commit time.
func (s *Service) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	sales, err := s.sales.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		From:          from,
		To:            to,
		SaleCount:     len(sales),
		Revenue:       decimal.Zero,
		TaxCollected:  decimal.Zero,
		DiscountGiven: decimal.Zero,
		CostOfGoods:   decimal.Zero,
		ExpenseTotal:  decimal.Zero,
	}

	for _, sale := range sales {
		sum.Revenue = sum.Revenue.Add(sale.GrandTotal)
		sum.TaxCollected = sum.TaxCollected.Add(sale.TaxTotal)
		sum.DiscountGiven = sum.DiscountGiven.Add(sale.DiscountTotal)
		for _, line := range sale.Lines {
			qty := decimal.NewFromInt(int64(line.Quantity))
			sum.CostOfGoods = sum.CostOfGoods.Add(line.UnitCost.Mul(qty))
		}
	}
	for _, e := range expenses {
		sum.ExpenseTotal = sum.ExpenseTotal.Add(e.Amount)
	}

	sum.GrossProfit = sum.Revenue.Sub(sum.CostOfGoods)
	sum.Net = sum.GrossProfit.Sub(sum.ExpenseTotal)
	return sum, nil
}
