package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/internal/service"
	mock_service "github.com/ACBRI/veritas.ia/internal/service/mocks"
)

func catalog() []*domain.OffenseType {
	return []*domain.OffenseType{
		{ID: 1, Name: "vote buying"},
		{ID: 2, Name: "voter intimidation"},
	}
}

func TestListOffenseTypes_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOffenseTypeRepository(ctrl)
	cache := mock_service.NewMockOffenseTypeCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(catalog(), nil).Times(1)
	// repo untouched on a hit

	svc := service.NewCatalogService(repo, cache, newTestLogger())

	got, err := svc.ListOffenseTypes(context.Background())
	if err != nil {
		t.Fatalf("ListOffenseTypes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 types got=%d", len(got))
	}
}

func TestListOffenseTypes_CacheMiss_FillsCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOffenseTypeRepository(ctrl)
	cache := mock_service.NewMockOffenseTypeCache(ctrl)

	types := catalog()

	cache.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().List(gomock.Any()).Return(types, nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), types, gomock.Any()).Return(nil).Times(1)

	svc := service.NewCatalogService(repo, cache, newTestLogger())

	got, err := svc.ListOffenseTypes(context.Background())
	if err != nil {
		t.Fatalf("ListOffenseTypes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 types got=%d", len(got))
	}
}

func TestListOffenseTypes_CacheDown_FallsThroughToStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOffenseTypeRepository(ctrl)
	cache := mock_service.NewMockOffenseTypeCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repo.EXPECT().List(gomock.Any()).Return(catalog(), nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewCatalogService(repo, cache, newTestLogger())

	got, err := svc.ListOffenseTypes(context.Background())
	if err != nil {
		t.Fatalf("a cache outage must not fail the read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 types got=%d", len(got))
	}
}

func TestListOffenseTypes_StoreError_Propagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockOffenseTypeRepository(ctrl)
	cache := mock_service.NewMockOffenseTypeCache(ctrl)

	wantErr := errors.New("boom")
	cache.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().List(gomock.Any()).Return(nil, wantErr).Times(1)

	svc := service.NewCatalogService(repo, cache, newTestLogger())

	_, err := svc.ListOffenseTypes(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v got=%v", wantErr, err)
	}
}
