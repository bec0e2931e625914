package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"nexuspos/internal/domain"
)

const productColumns = `id::text, barcode, name, COALESCE(brand, ''), COALESCE(category, ''), price, mrp, discount_rate, cost, tax_rate, stock, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "product").Logger()}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list products")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("list products rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE barcode = $1
`
	return r.getOne(ctx, q, barcode)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Msg("get product")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (barcode, name, brand, category, price, mrp, discount_rate, cost, tax_rate, stock)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
RETURNING ` + productColumns + `
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Barcode, p.Name, p.Brand, p.Category,
		p.Price, p.MRP, p.DiscountRate, p.Cost, p.TaxRate, p.Stock,
	))
	if err != nil {
		r.logger.Error().Err(err).Str("barcode", p.Barcode).Msg("create product")
		return nil, err
	}
	r.logger.Info().Str("id", res.ID).Str("barcode", res.Barcode).Msg("product created")
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET barcode = $2,
    name = $3,
    brand = NULLIF($4, ''),
    category = NULLIF($5, ''),
    price = $6,
    mrp = $7,
    discount_rate = $8,
    cost = $9,
    tax_rate = $10,
    stock = $11
WHERE id = $1
RETURNING ` + productColumns + `
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Barcode, p.Name, p.Brand, p.Category,
		p.Price, p.MRP, p.DiscountRate, p.Cost, p.TaxRate, p.Stock,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", p.ID).Msg("update product")
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete product")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserts or updates by barcode. Used by the CSV importer and seeds.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (barcode, name, brand, category, price, mrp, discount_rate, cost, tax_rate, stock)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
ON CONFLICT (barcode) DO UPDATE SET
    name = EXCLUDED.name,
    brand = EXCLUDED.brand,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    mrp = EXCLUDED.mrp,
    discount_rate = EXCLUDED.discount_rate,
    cost = EXCLUDED.cost,
    tax_rate = EXCLUDED.tax_rate,
    stock = EXCLUDED.stock
RETURNING ` + productColumns + `
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.Barcode, p.Name, p.Brand, p.Category,
		p.Price, p.MRP, p.DiscountRate, p.Cost, p.TaxRate, p.Stock,
	))
	if err != nil {
		r.logger.Error().Err(err).Str("barcode", p.Barcode).Msg("upsert product")
		return nil, err
	}
	return &res, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Brand, &p.Category,
		&p.Price, &p.MRP, &p.DiscountRate, &p.Cost, &p.TaxRate,
		&p.Stock, &p.CreatedAt,
	)
	return p, err
}
