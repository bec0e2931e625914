package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"nexuspos/internal/domain"
	"nexuspos/internal/migrate"
)

func TestPostgres_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())

	created, err := repo.Create(ctx, domain.Product{
		Barcode: "1001",
		Name:    "Espresso",
		Brand:   "NexusBrew",
		Price:   decimal.RequireFromString("150.00"),
		MRP:     decimal.RequireFromString("200.00"),
		Cost:    decimal.RequireFromString("50.00"),
		TaxRate: decimal.NewFromInt(18),
		Stock:   100,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := repo.GetByBarcode(ctx, "1001")
	if err != nil {
		t.Fatalf("GetByBarcode: %v", err)
	}
	if got.ID != created.ID || !got.Price.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected product %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}
}

func TestPostgres_UpsertByBarcode(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())

	first, err := repo.Upsert(ctx, domain.Product{Barcode: "1001", Name: "Espresso", Price: decimal.NewFromInt(150)})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	second, err := repo.Upsert(ctx, domain.Product{Barcode: "1001", Name: "Espresso Doppio", Price: decimal.NewFromInt(170)})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %s and %s", first.ID, second.ID)
	}
	if second.Name != "Espresso Doppio" || !second.Price.Equal(decimal.NewFromInt(170)) {
		t.Fatalf("unexpected product %+v", second)
	}
}

func TestPostgres_GetMissing(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())
	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE sale_lines, sales, products RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
