package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/internal/service"
	mock_service "github.com/ACBRI/veritas.ia/internal/service/mocks"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func validCreateRequest() domain.CreateReportRequest {
	return domain.CreateReportRequest{
		OffenseTypeID: 3,
		Coordinates:   domain.Coordinates{Latitude: 10.0, Longitude: 20.0},
	}
}

func TestSubmit_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, nil).Times(1)

	var saved *domain.Report
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Report) error {
			saved = r
			return nil
		}).
		Times(1)

	pub.EXPECT().
		PublishCreated(gomock.Any()).
		Do(func(r *domain.Report) {
			if saved == nil || r.ID != saved.ID {
				t.Fatalf("published a report that was not persisted")
			}
		}).
		Times(1)

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	report, err := svc.Submit(context.Background(), "203.0.113.7", validCreateRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if report.OffenseTypeID != 3 {
		t.Fatalf("offense_type_id=%d want=3", report.OffenseTypeID)
	}
	if report.Coordinates.Latitude != 10.0 || report.Coordinates.Longitude != 20.0 {
		t.Fatalf("coordinates=%+v", report.Coordinates)
	}
}

func TestSubmit_RateLimited_NoSideEffects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	// no Save, no PublishCreated

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	_, err := svc.Submit(context.Background(), "203.0.113.7", validCreateRequest())
	if !errors.Is(err, e.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited got=%v", err)
	}
}

func TestSubmit_LimiterStoreDown_Propagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	storeErr := errors.New("redis down")
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, storeErr).Times(1)

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	_, err := svc.Submit(context.Background(), "203.0.113.7", validCreateRequest())
	if !errors.Is(err, storeErr) {
		t.Fatalf("counter store outage must propagate, got=%v", err)
	}
}

func TestSubmit_InvalidCoordinates_NothingPersisted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	req := validCreateRequest()
	req.Coordinates.Latitude = 91.0

	_, err := svc.Submit(context.Background(), "203.0.113.7", req)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates got=%v", err)
	}
}

func TestSubmit_PersistenceFails_NoBroadcast(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(e.ErrInternal).Times(1)
	// a phantom event with no durable record must never go out

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	_, err := svc.Submit(context.Background(), "203.0.113.7", validCreateRequest())
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected persistence error, got=%v", err)
	}
}

func TestConfirm_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	id := uuid.New()
	confirmed := &domain.Report{ID: id, ConfirmationCount: 4, IsActive: true}

	limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(true, nil).Times(1)
	repo.EXPECT().IncrementConfirmation(gomock.Any(), id).Return(confirmed, nil).Times(1)
	pub.EXPECT().PublishConfirmed(confirmed).Times(1)

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	got, err := svc.Confirm(context.Background(), "203.0.113.7", id)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if got.ConfirmationCount != 4 {
		t.Fatalf("confirmation_count=%d want=4", got.ConfirmationCount)
	}
}

func TestConfirm_NotFound_NoEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	id := uuid.New()

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
	repo.EXPECT().IncrementConfirmation(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)
	// no PublishConfirmed

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	_, err := svc.Confirm(context.Background(), "203.0.113.7", id)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got=%v", err)
	}
}

func TestConfirm_RateLimitedBeforeLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	// the store is never consulted for a throttled client

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	_, err := svc.Confirm(context.Background(), "203.0.113.7", uuid.New())
	if !errors.Is(err, e.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited got=%v", err)
	}
}

func TestQuery_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mock_service.NewMockRateLimiter(ctrl)
	repo := mock_service.NewMockReportRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)

	box, err := domain.NewBoundingBox(9, 19, 11, 21)
	if err != nil {
		t.Fatalf("NewBoundingBox: %v", err)
	}
	offense := 3
	want := []*domain.Report{{ID: uuid.New(), IsActive: true}}

	repo.EXPECT().
		QueryActive(gomock.Any(), box, &offense, true, gomock.Any()).
		Return(want, nil).
		Times(1)

	svc := service.NewReportService(limiter, repo, pub, newTestLogger())

	got, err := svc.Query(context.Background(), domain.QueryReportsRequest{
		Box:         box,
		OffenseType: &offense,
		ActiveOnly:  true,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 || got[0].ID != want[0].ID {
		t.Fatalf("unexpected result: %+v", got)
	}
}
