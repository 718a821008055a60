package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportService is the ingestion pipeline exposed to the API layer.
type ReportService interface {
	Submit(ctx context.Context, clientID string, req domain.CreateReportRequest) (*domain.Report, error)
	Confirm(ctx context.Context, clientID string, reportID uuid.UUID) (*domain.Report, error)
	Query(ctx context.Context, req domain.QueryReportsRequest) ([]*domain.Report, error)
}

// CatalogService serves the offense-type catalog.
type CatalogService interface {
	ListOffenseTypes(ctx context.Context) ([]*domain.OffenseType, error)
}

// RateLimiter admits or rejects a request from one client. An exhausted
// limit is the normal false result; an error means the counter store itself
// failed.
type RateLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// Publisher fans report events out to live subscribers. Delivery problems
// are internal to the implementation and never surface here.
type Publisher interface {
	PublishCreated(report *domain.Report)
	PublishConfirmed(report *domain.Report)
}

type ReportRepository interface {
	Save(ctx context.Context, report *domain.Report) error
	IncrementConfirmation(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	QueryActive(ctx context.Context, box domain.BoundingBox, offenseTypeID *int, activeOnly bool, now time.Time) ([]*domain.Report, error)
}

type OffenseTypeRepository interface {
	List(ctx context.Context) ([]*domain.OffenseType, error)
}

type OffenseTypeCache interface {
	Get(ctx context.Context) ([]*domain.OffenseType, error)
	Set(ctx context.Context, types []*domain.OffenseType, ttl time.Duration) error
}

type Service struct {
	Reports ReportService
	Catalog CatalogService
}

func NewService(reports ReportService, catalog CatalogService) *Service {
	return &Service{
		Reports: reports,
		Catalog: catalog,
	}
}
