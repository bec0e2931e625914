package expense

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"nexuspos/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "expense").Logger()}
}

func (r *postgresRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	const q = `
SELECT id::text, date, description, amount, COALESCE(category, ''), created_at
FROM expenses
WHERE date >= $1 AND date < $2
ORDER BY date DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		r.logger.Error().Err(err).Msg("list expenses")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	const q = `
INSERT INTO expenses (date, description, amount, category)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING id::text, created_at
`
	res := e
	if res.Date.IsZero() {
		res.Date = time.Now().UTC()
	}
	if err := r.pool.QueryRow(ctx, q, res.Date, e.Description, e.Amount, e.Category).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Error().Err(err).Msg("create expense")
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete expense")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
