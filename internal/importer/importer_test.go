package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `barcode,name,brand,category,price,mrp,discountRate,cost,taxRate,stock
1001,Espresso,NexusBrew,Beverages,150.00,200.00,25.0,50.00,18,100
2001,Croissant,BakeryBest,Food,80.00,100.00,,30.00,5,50
3001,Water Bottle,,,20.00,,,8.00,,200`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}

	first := repo.items[0]
	if first.Barcode != "1001" || first.Name != "Espresso" || !first.Price.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if !first.DiscountRate.Equal(decimal.NewFromFloat(25)) {
		t.Fatalf("expected discount rate 25, got %s", first.DiscountRate)
	}

	// 80 off 100 is a 20% markdown, derived because the column was blank.
	second := repo.items[1]
	if !second.DiscountRate.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected derived rate 20, got %s", second.DiscountRate)
	}

	// Missing mrp falls back to the selling price with no markdown.
	third := repo.items[2]
	if !third.MRP.Equal(decimal.NewFromInt(20)) || !third.DiscountRate.IsZero() {
		t.Fatalf("unexpected fallback pricing: %+v", third)
	}
	if third.Stock != 200 {
		t.Fatalf("expected stock 200, got %d", third.Stock)
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `barcode,name,price
1001,Espresso,150
,,
`
	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported, got %d", count)
	}
}

func TestCSVImporter_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"missing name", "barcode,name,price\n1001,,150\n"},
		{"zero price", "barcode,name,price\n1001,Espresso,0\n"},
		{"bad decimal", "barcode,name,price\n1001,Espresso,abc\n"},
		{"negative stock", "barcode,name,price,stock\n1001,Espresso,150,-3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			imp := NewCSVImporter(strings.NewReader(tc.csv), &stubProductRepo{})
			if _, err := imp.Run(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
