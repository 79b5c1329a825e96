package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/repository"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

const (
	catalogCacheTTL     = 5 * time.Minute
	catalogVersionKey   = "agrilink:services:ver"
	catalogCacheKeyTmpl = "agrilink:services:%d:%d:%d:%s:%s"
)

// CatalogService manages the public services catalog. Public listings are
// cached in Redis best-effort; every officer mutation bumps the version so
// stale pages fall out of use immediately.
type CatalogService struct {
	services repository.ServiceRepository
	cache    *redis.Client
	logger   *zap.Logger
}

// NewCatalogService constructs the service. cache may be nil in tests.
func NewCatalogService(services repository.ServiceRepository, cache *redis.Client, logger *zap.Logger) *CatalogService {
	return &CatalogService{services: services, cache: cache, logger: logger}
}

// CatalogQuery carries allow-listed listing parameters.
type CatalogQuery struct {
	IncludeInactive bool
	Category        *string
	Search          *string
	Page            repository.Page
}

type cachedCatalogPage struct {
	Items []domain.ServiceOffering `json:"items"`
	Total int                      `json:"total"`
}

// List returns catalog entries. The public view is restricted to active
// entries regardless of caller-supplied filters; only officer routes pass
// IncludeInactive.
func (s *CatalogService) List(ctx context.Context, query CatalogQuery) ([]domain.ServiceOffering, int, error) {
	filter := repository.ServiceFilter{
		ActiveOnly: !query.IncludeInactive,
		Category:   query.Category,
		Search:     query.Search,
		Page:       query.Page,
	}

	cacheKey := ""
	if s.cache != nil && filter.ActiveOnly {
		cacheKey = s.catalogKey(ctx, filter)
		if cacheKey != "" {
			if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
				var page cachedCatalogPage
				if json.Unmarshal(raw, &page) == nil {
					return page.Items, page.Total, nil
				}
			}
		}
	}

	items, total, err := s.services.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}

	if cacheKey != "" {
		if raw, err := json.Marshal(cachedCatalogPage{Items: items, Total: total}); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, catalogCacheTTL).Err(); err != nil {
				s.logger.Debug("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return items, total, nil
}

// Get fetches a single catalog entry.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.ServiceOffering, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return svc, nil
}

// CatalogInput describes a catalog entry payload.
type CatalogInput struct {
	Name        string
	Description string
	Category    string
	IsActive    bool
}

// Create adds a catalog entry (officer only, enforced at the route).
func (s *CatalogService) Create(ctx context.Context, input CatalogInput) (*domain.ServiceOffering, error) {
	svc := &domain.ServiceOffering{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		IsActive:    input.IsActive,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.bumpVersion(ctx)
	return svc, nil
}

// Update modifies a catalog entry.
func (s *CatalogService) Update(ctx context.Context, id string, input CatalogInput) (*domain.ServiceOffering, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", nil)
		}
		return nil, apperrors.MapError(err)
	}
	svc.Name = strings.TrimSpace(input.Name)
	svc.Description = strings.TrimSpace(input.Description)
	svc.Category = strings.TrimSpace(input.Category)
	svc.IsActive = input.IsActive
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.bumpVersion(ctx)
	return svc, nil
}

// Deactivate hides a catalog entry from the public listing.
func (s *CatalogService) Deactivate(ctx context.Context, id string) (*domain.ServiceOffering, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", nil)
		}
		return nil, apperrors.MapError(err)
	}
	svc.IsActive = false
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.bumpVersion(ctx)
	return svc, nil
}

func (s *CatalogService) catalogKey(ctx context.Context, filter repository.ServiceFilter) string {
	ver, err := s.cache.Get(ctx, catalogVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	category, search := "", ""
	if filter.Category != nil {
		category = *filter.Category
	}
	if filter.Search != nil {
		search = *filter.Search
	}
	page := repository.ClampPage(filter.Page.Number, filter.Page.Limit)
	return fmt.Sprintf(catalogCacheKeyTmpl, ver, page.Number, page.Limit, category, search)
}

func (s *CatalogService) bumpVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, catalogVersionKey).Err(); err != nil {
		s.logger.Debug("catalog cache invalidation failed", zap.Error(err))
	}
}
