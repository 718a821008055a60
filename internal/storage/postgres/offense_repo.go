package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

type OffenseTypeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOffenseTypeRepo(pool *pgxpool.Pool, logger *slog.Logger) *OffenseTypeRepo {
	return &OffenseTypeRepo{pool: pool, logger: logger}
}

func (r *OffenseTypeRepo) List(ctx context.Context) ([]*domain.OffenseType, error) {
	const op = "postgres.OffenseType.List"

	const query = `
SELECT id, name, COALESCE(description, ''), COALESCE(icon_url, '')
FROM offense_types
ORDER BY id
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	types := make([]*domain.OffenseType, 0, 16)
	for rows.Next() {
		var t domain.OffenseType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IconURL); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return types, nil
}
