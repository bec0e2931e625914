package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Barcode      string
	Name         string
	Brand        string
	Category     string
	Price        string
	MRP          string
	DiscountRate string
	Cost         string
	TaxRate      string
	Stock        int
}

type schemeSeed struct {
	Name   string
	BuyQty int
	GetQty int
}

// Apply inserts demo data for manual testing. It is idempotent: products
// upsert by barcode, schemes by name, settings by the single-row id.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{Barcode: "1001", Name: "Espresso", Brand: "NexusBrew", Category: "Beverages", Price: "150.00", MRP: "200.00", DiscountRate: "25.0", Cost: "50.00", TaxRate: "18", Stock: 100},
		{Barcode: "1002", Name: "Cappuccino", Brand: "NexusBrew", Category: "Beverages", Price: "180.00", MRP: "250.00", DiscountRate: "28.0", Cost: "60.00", TaxRate: "18", Stock: 100},
		{Barcode: "2001", Name: "Croissant", Brand: "BakeryBest", Category: "Food", Price: "80.00", MRP: "100.00", DiscountRate: "20.0", Cost: "30.00", TaxRate: "5", Stock: 50},
		{Barcode: "2002", Name: "Blueberry Muffin", Brand: "BakeryBest", Category: "Food", Price: "120.00", MRP: "150.00", DiscountRate: "20.0", Cost: "45.00", TaxRate: "5", Stock: 40},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Barcode, err)
		}
	}

	schemes := []schemeSeed{
		{Name: "Standard BOGO (Buy 1 Get 1)", BuyQty: 1, GetQty: 1},
		{Name: "Buy 2 Get 1 Free", BuyQty: 2, GetQty: 1},
	}
	for _, s := range schemes {
		if err := upsertScheme(ctx, pool, s); err != nil {
			return fmt.Errorf("upsert scheme %q: %w", s.Name, err)
		}
	}

	if err := upsertSettings(ctx, pool); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (barcode, name, brand, category, price, mrp, discount_rate, cost, tax_rate, stock)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (barcode) DO UPDATE
SET name = EXCLUDED.name,
    brand = EXCLUDED.brand,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    mrp = EXCLUDED.mrp,
    discount_rate = EXCLUDED.discount_rate,
    cost = EXCLUDED.cost,
    tax_rate = EXCLUDED.tax_rate
`
	_, err := pool.Exec(ctx, q, p.Barcode, p.Name, p.Brand, p.Category, p.Price, p.MRP, p.DiscountRate, p.Cost, p.TaxRate, p.Stock)
	return err
}

func upsertScheme(ctx context.Context, pool *pgxpool.Pool, s schemeSeed) error {
	const exists = `SELECT EXISTS (SELECT 1 FROM group_schemes WHERE name = $1)`
	var found bool
	if err := pool.QueryRow(ctx, exists, s.Name).Scan(&found); err != nil {
		return err
	}
	if found {
		return nil
	}
	_, err := pool.Exec(ctx, `INSERT INTO group_schemes (name, buy_qty, get_qty) VALUES ($1, $2, $3)`, s.Name, s.BuyQty, s.GetQty)
	return err
}

func upsertSettings(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO store_settings (id, store_name, currency, address, phone, gst_no, footer_text, tax_included)
VALUES (1, $1, $2, $3, $4, $5, $6, false)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q,
		"Nexus Coffee & Co", "INR",
		"123 Tech Park, Silicon Valley", "9876543210",
		"29ABCDE1234F1Z5", "Thank you for visiting! Please come again.",
	)
	return err
}
