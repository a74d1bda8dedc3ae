package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// recommendedProductsCount is the number of best sellers on the home page.
const recommendedProductsCount = 4

// CatalogService loads product listings.
type CatalogService struct {
	client driven.StorefrontClient
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(client driven.StorefrontClient) *CatalogService {
	return &CatalogService{client: client}
}

// Home loads the critical half of the landing page: the featured collection.
// Recommended products are loaded separately with RecommendedProducts.
func (s *CatalogService) Home(ctx context.Context) (*domain.HomePage, error) {
	logger.Section("Home Page")

	featured, err := s.client.FeaturedCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("load featured collection: %w", err)
	}
	logger.Debug("Home page: featured=%v", featured != nil)
	return &domain.HomePage{FeaturedCollection: featured}, nil
}

// RecommendedProducts loads the deferred half of the home page on its own.
// Errors are logged and return nil.
func (s *CatalogService) RecommendedProducts(ctx context.Context) []domain.Product {
	products, err := s.client.RecommendedProducts(ctx, recommendedProductsCount)
	if err != nil {
		logger.Warn("Recommended products unavailable: %v", err)
		return nil
	}
	return products
}
