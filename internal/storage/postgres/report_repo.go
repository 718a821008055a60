package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (r *ReportRepo) Save(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Save"

	if report == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
		report.ExpiresAt = report.CreatedAt.Add(domain.ReportTTL)
	}

	// location is kept both as a PostGIS point (for any distance work) and as
	// plain lat/lng columns so bounding-box reads use the exact same
	// inclusive comparisons as the in-memory predicate.
	const query = `
INSERT INTO reports (id, offense_type_id, location, lat, lng, accuracy, created_at, expires_at, confirmation_count, is_active)
VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $4, $3, $5, $6, $7, $8, $9)
`

	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.OffenseTypeID,
		report.Coordinates.Longitude,
		report.Coordinates.Latitude,
		report.Coordinates.Accuracy,
		report.CreatedAt,
		report.ExpiresAt,
		report.ConfirmationCount,
		report.IsActive,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("report_id", report.ID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *ReportRepo) IncrementConfirmation(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.IncrementConfirmation"

	if id == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// Single UPDATE .. RETURNING: increments are atomic in the database, so
	// N concurrent confirmations always land as exactly +N.
	const query = `
UPDATE reports
SET confirmation_count = confirmation_count + 1
WHERE id = $1
RETURNING id, offense_type_id, lat, lng, accuracy, created_at, expires_at, confirmation_count, is_active
`

	report, err := r.scanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		r.logger.Warn("confirmation increment failed",
			slog.String("op", op),
			slog.String("report_id", id.String()),
			slog.Any("error", err),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

func (r *ReportRepo) QueryActive(ctx context.Context, box domain.BoundingBox, offenseTypeID *int, activeOnly bool, now time.Time) ([]*domain.Report, error) {
	const op = "postgres.Report.QueryActive"

	// BETWEEN is inclusive on both ends, matching BoundingBox.Contains.
	query := `
SELECT id, offense_type_id, lat, lng, accuracy, created_at, expires_at, confirmation_count, is_active
FROM reports
WHERE lat BETWEEN $1 AND $2
  AND lng BETWEEN $3 AND $4
`
	args := []any{box.MinLat, box.MaxLat, box.MinLon, box.MaxLon}

	if offenseTypeID != nil {
		args = append(args, *offenseTypeID)
		query += fmt.Sprintf("  AND offense_type_id = $%d\n", len(args))
	}
	if activeOnly {
		args = append(args, now)
		query += fmt.Sprintf("  AND is_active AND expires_at > $%d\n", len(args))
	}
	query += "ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0, 16)
	for rows.Next() {
		report, err := r.scanRow(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReportRepo) scanRow(row rowScanner) (*domain.Report, error) {
	var report domain.Report
	err := row.Scan(
		&report.ID,
		&report.OffenseTypeID,
		&report.Coordinates.Latitude,
		&report.Coordinates.Longitude,
		&report.Coordinates.Accuracy,
		&report.CreatedAt,
		&report.ExpiresAt,
		&report.ConfirmationCount,
		&report.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
