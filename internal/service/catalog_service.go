package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/ACBRI/veritas.ia/internal/domain"
	"github.com/ACBRI/veritas.ia/pkg/e"
)

const offenseCacheTTL = 5 * time.Minute

type catalogService struct {
	repo   OffenseTypeRepository
	cache  OffenseTypeCache
	logger *slog.Logger
}

func NewCatalogService(repo OffenseTypeRepository, cache OffenseTypeCache, logger *slog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListOffenseTypes is cache-aside: a cache failure degrades to the database,
// never to an error for the caller.
func (s *catalogService) ListOffenseTypes(ctx context.Context) ([]*domain.OffenseType, error) {
	const op = "service.Catalog.ListOffenseTypes"

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("offense cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, types, offenseCacheTTL); err != nil {
			s.logger.Warn("offense cache write failed", slog.Any("error", err))
		}
	}

	return types, nil
}
