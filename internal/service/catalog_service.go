package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/git-217/go-carDealership/internal/cache"
	"github.com/git-217/go-carDealership/internal/model"
)

const catalogKey = "catalog"

type BrandLister interface {
	List(ctx context.Context) ([]model.Brand, error)
}

type ModelLister interface {
	List(ctx context.Context) ([]model.VehicleModel, error)
}

// CatalogService serves the brand/model snapshot embedded in the search page.
type CatalogService struct {
	brands BrandLister
	models ModelLister
	cache  *cache.Cache[*model.Catalog]
	logger *slog.Logger
}

func NewCatalogService(
	br BrandLister,
	mr ModelLister,
	c *cache.Cache[*model.Catalog],
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		brands: br,
		models: mr,
		cache:  c,
		logger: logger,
	}
}

// Snapshot returns the cached catalog, loading it from the repositories on a miss.
func (s *CatalogService) Snapshot(ctx context.Context) (*model.Catalog, error) {
	if catalog, ok := s.cache.Get(catalogKey); ok {
		return catalog, nil
	}

	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}

	models, err := s.models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}

	catalog := &model.Catalog{Brands: brands, Models: models}
	if catalog.Brands == nil {
		catalog.Brands = []model.Brand{}
	}
	if catalog.Models == nil {
		catalog.Models = []model.VehicleModel{}
	}

	s.cache.Set(catalogKey, catalog)
	s.logger.Debug("catalog loaded", "brands", len(catalog.Brands), "models", len(catalog.Models))

	return catalog, nil
}

// Invalidate forces the next Snapshot to reload from the database.
func (s *CatalogService) Invalidate() {
	s.cache.Delete(catalogKey)
}
