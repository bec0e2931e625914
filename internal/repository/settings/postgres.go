package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"nexuspos/internal/domain"
)

// The store profile is a single row with a fixed id.
type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "settings").Logger()}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.StoreSettings, error) {
	const q = `
SELECT store_name, currency, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(gst_no, ''), COALESCE(footer_text, ''), tax_included
FROM store_settings
WHERE id = 1
`
	var s domain.StoreSettings
	err := r.pool.QueryRow(ctx, q).Scan(
		&s.StoreName, &s.Currency, &s.Address, &s.Phone, &s.GSTNo, &s.FooterText, &s.TaxIncluded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Msg("get settings")
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Save(ctx context.Context, s domain.StoreSettings) (*domain.StoreSettings, error) {
	const q = `
INSERT INTO store_settings (id, store_name, currency, address, phone, gst_no, footer_text, tax_included)
VALUES (1, $1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
ON CONFLICT (id) DO UPDATE SET
    store_name = EXCLUDED.store_name,
    currency = EXCLUDED.currency,
    address = EXCLUDED.address,
    phone = EXCLUDED.phone,
    gst_no = EXCLUDED.gst_no,
    footer_text = EXCLUDED.footer_text,
    tax_included = EXCLUDED.tax_included
`
	if _, err := r.pool.Exec(ctx, q,
		s.StoreName, s.Currency, s.Address, s.Phone, s.GSTNo, s.FooterText, s.TaxIncluded,
	); err != nil {
		r.logger.Error().Err(err).Msg("save settings")
		return nil, err
	}
	return &s, nil
}
