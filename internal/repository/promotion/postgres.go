package promotion

import (
	"context"
	"errors"

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
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "promotion").Logger()}
}

func (r *postgresRepo) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const q = `
SELECT id::text, code, kind, value, active, created_at
FROM coupons
WHERE code = $1
`
	var c domain.Coupon
	err := r.pool.QueryRow(ctx, q, code).Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("code", code).Msg("get coupon")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	const q = `
SELECT id::text, code, kind, value, active, created_at
FROM coupons
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list coupons")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, kind, value, active)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	res := c
	if err := r.pool.QueryRow(ctx, q, c.Code, c.Kind, c.Value, c.Active).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Error().Err(err).Str("code", c.Code).Msg("create coupon")
		return nil, err
	}
	r.logger.Info().Str("code", res.Code).Msg("coupon created")
	return &res, nil
}

func (r *postgresRepo) DeleteCoupon(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete coupon")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetScheme(ctx context.Context, id string) (*domain.GroupScheme, error) {
	const q = `
SELECT id::text, name, buy_qty, get_qty, created_at
FROM group_schemes
WHERE id = $1
`
	var s domain.GroupScheme
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.BuyQty, &s.GetQty, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get scheme")
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) ListSchemes(ctx context.Context) ([]domain.GroupScheme, error) {
	const q = `
SELECT id::text, name, buy_qty, get_qty, created_at
FROM group_schemes
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list schemes")
		return nil, err
	}
	defer rows.Close()

	var result []domain.GroupScheme
	for rows.Next() {
		var s domain.GroupScheme
		if err := rows.Scan(&s.ID, &s.Name, &s.BuyQty, &s.GetQty, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) CreateScheme(ctx context.Context, s domain.GroupScheme) (*domain.GroupScheme, error) {
	const q = `
INSERT INTO group_schemes (name, buy_qty, get_qty)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`
	res := s
	if err := r.pool.QueryRow(ctx, q, s.Name, s.BuyQty, s.GetQty).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Error().Err(err).Str("name", s.Name).Msg("create scheme")
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) DeleteScheme(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM group_schemes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete scheme")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
