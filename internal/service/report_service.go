package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

type reportService struct {
	limiter   RateLimiter
	repo      ReportRepository
	publisher Publisher
	logger    *slog.Logger
}

func NewReportService(
	limiter RateLimiter,
	repo ReportRepository,
	publisher Publisher,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		limiter:   limiter,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit runs the write pipeline: admission, construction, persistence,
// then broadcast. Each step short-circuits; the broadcast runs only for a
// report that is already durable, so subscribers never see phantom events.
func (s *reportService) Submit(ctx context.Context, clientID string, req domain.CreateReportRequest) (*domain.Report, error) {
	const op = "service.Report.Submit"

	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !allowed {
		return nil, fmt.Errorf("%s: %w", op, e.ErrRateLimited)
	}

	report, err := domain.NewReport(
		req.OffenseTypeID,
		req.Coordinates.Latitude,
		req.Coordinates.Longitude,
		req.Coordinates.Accuracy,
	)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.repo.Save(ctx, report); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.publisher.PublishCreated(report)

	s.logger.Info("report submitted",
		slog.String("report_id", report.ID.String()),
		slog.Int("offense_type_id", report.OffenseTypeID),
		slog.Float64("lat", report.Coordinates.Latitude),
		slog.Float64("lng", report.Coordinates.Longitude),
	)

	return report, nil
}

// Confirm checks admission first (the limiter protects the store from lookup
// floods), then increments. A missing report surfaces as not-found before
// any event goes out.
func (s *reportService) Confirm(ctx context.Context, clientID string, reportID uuid.UUID) (*domain.Report, error) {
	const op = "service.Report.Confirm"

	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !allowed {
		return nil, fmt.Errorf("%s: %w", op, e.ErrRateLimited)
	}

	report, err := s.repo.IncrementConfirmation(ctx, reportID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.publisher.PublishConfirmed(report)

	s.logger.Info("report confirmed",
		slog.String("report_id", report.ID.String()),
		slog.Int("confirmation_count", report.ConfirmationCount),
	)

	return report, nil
}

func (s *reportService) Query(ctx context.Context, req domain.QueryReportsRequest) ([]*domain.Report, error) {
	const op = "service.Report.Query"

	reports, err := s.repo.QueryActive(ctx, req.Box, req.OffenseType, req.ActiveOnly, time.Now().UTC())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Debug("reports queried",
		slog.Int("count", len(reports)),
		slog.Bool("active_only", req.ActiveOnly),
	)

	return reports, nil
}
