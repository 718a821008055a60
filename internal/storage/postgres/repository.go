package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/internal/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report *domain.Report) error
	IncrementConfirmation(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	QueryActive(ctx context.Context, box domain.BoundingBox, offenseTypeID *int, activeOnly bool, now time.Time) ([]*domain.Report, error)
}

type OffenseTypeRepository interface {
	List(ctx context.Context) ([]*domain.OffenseType, error)
}

func (p *Postgres) Reports() ReportRepository      { return p.Report }
func (p *Postgres) OffenseTypes() OffenseTypeRepository { return p.Offenses }
