package sale

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"nexuspos/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "sale").Logger()}
}

// Commit inserts the sale with its lines and decrements stock for every
// line's product inside one transaction. Product rows are locked and stock
// re-checked under the lock, so a quantity that raced past the caller's
// pre-validation still aborts with InsufficientStockError and nothing is
// persisted.
func (r *postgresRepo) Commit(ctx context.Context, s domain.Sale) (*domain.Sale, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	for _, line := range s.Lines {
		var name string
		var stock int
		err := tx.QueryRow(ctx, `
SELECT name, stock
FROM products
WHERE id = $1
FOR UPDATE
`, line.ProductID).Scan(&name, &stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.InsufficientStockError{
					ProductID: line.ProductID,
					Name:      line.Name,
					Requested: line.Quantity,
					Available: 0,
				}
			}
			return nil, err
		}
		if stock < line.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID: line.ProductID,
				Name:      name,
				Requested: line.Quantity,
				Available: stock,
			}
		}
	}

	const insertSale = `
INSERT INTO sales (id, customer_name, subtotal, tax_total, discount_total, grand_total, payment_method,
                   item_discount, coupon_code, coupon_discount, scheme_name, group_discount, manual_discount)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), NULLIF($2, ''), $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, NULLIF($11, ''), $12, $13)
RETURNING id::text, created_at
`
	res := s
	if err := tx.QueryRow(ctx, insertSale,
		s.ID, s.CustomerName,
		s.Subtotal, s.TaxTotal, s.DiscountTotal, s.GrandTotal,
		s.PaymentMethod,
		s.Discounts.ItemAmount,
		s.Discounts.CouponCode, s.Discounts.CouponAmount,
		s.Discounts.SchemeName, s.Discounts.GroupAmount,
		s.Discounts.ManualAmount,
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Error().Err(err).Msg("insert sale")
		return nil, err
	}

	for i, line := range s.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO sale_lines (sale_id, product_id, barcode, name, unit_price, unit_cost, tax_rate, quantity, unit_discount, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, res.ID, line.ProductID, line.Barcode, line.Name,
			line.UnitPrice, line.UnitCost, line.TaxRate, line.Quantity, line.UnitDiscount, i,
		); err != nil {
			r.logger.Error().Err(err).Str("sale_id", res.ID).Msg("insert sale line")
			return nil, err
		}

		if _, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $1
WHERE id = $2
`, line.Quantity, line.ProductID); err != nil {
			r.logger.Error().Err(err).Str("product_id", line.ProductID).Msg("decrement stock")
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Info().Str("id", res.ID).Str("total", res.GrandTotal.String()).Msg("sale committed")
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	const q = `
SELECT id::text, created_at, COALESCE(customer_name, ''), subtotal, tax_total, discount_total, grand_total, payment_method,
       item_discount, COALESCE(coupon_code, ''), coupon_discount, COALESCE(scheme_name, ''), group_discount, manual_discount
FROM sales
WHERE id = $1
`
	s, err := scanSale(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get sale")
		return nil, err
	}
	if err := r.loadLines(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	const q = `
SELECT id::text, created_at, COALESCE(customer_name, ''), subtotal, tax_total, discount_total, grand_total, payment_method,
       item_discount, COALESCE(coupon_code, ''), coupon_discount, COALESCE(scheme_name, ''), group_discount, manual_discount
FROM sales
WHERE created_at >= $1 AND created_at < $2
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		r.logger.Error().Err(err).Msg("list sales")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadLines(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) loadLines(ctx context.Context, s *domain.Sale) error {
	const q = `
SELECT product_id::text, barcode, name, unit_price, unit_cost, tax_rate, quantity, unit_discount
FROM sale_lines
WHERE sale_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, s.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("sale_id", s.ID).Msg("load sale lines")
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.SaleLine
		if err := rows.Scan(
			&line.ProductID, &line.Barcode, &line.Name,
			&line.UnitPrice, &line.UnitCost, &line.TaxRate,
			&line.Quantity, &line.UnitDiscount,
		); err != nil {
			return err
		}
		s.Lines = append(s.Lines, line)
	}
	return rows.Err()
}

func scanSale(row pgx.Row) (domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.CustomerName,
		&s.Subtotal, &s.TaxTotal, &s.DiscountTotal, &s.GrandTotal,
		&s.PaymentMethod,
		&s.Discounts.ItemAmount,
		&s.Discounts.CouponCode, &s.Discounts.CouponAmount,
		&s.Discounts.SchemeName, &s.Discounts.GroupAmount,
		&s.Discounts.ManualAmount,
	)
	return s, err
}
