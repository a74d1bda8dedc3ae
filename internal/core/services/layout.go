package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driving"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure LayoutService implements the interface.
var _ driving.LayoutService = (*LayoutService)(nil)

// LayoutService loads header and footer navigation.
type LayoutService struct {
	client     driven.StorefrontClient
	storefront domain.StorefrontSettings
}

// NewLayoutService creates a new layout service.
func NewLayoutService(client driven.StorefrontClient, storefront domain.StorefrontSettings) *LayoutService {
	if storefront.HeaderMenu == "" {
		storefront.HeaderMenu = domain.DefaultHeaderMenu
	}
	if storefront.FooterMenu == "" {
		storefront.FooterMenu = domain.DefaultFooterMenu
	}
	return &LayoutService{
		client:     client,
		storefront: storefront,
	}
}

// Header loads the shop and header menu.
func (s *LayoutService) Header(ctx context.Context) (*domain.Header, error) {
	header, err := s.client.Header(ctx, s.storefront.HeaderMenu)
	if err != nil {
		return nil, fmt.Errorf("load header: %w", err)
	}
	return header, nil
}

// Footer loads the footer menu. Failures are logged and return nil.
func (s *LayoutService) Footer(ctx context.Context) *domain.Footer {
	footer, err := s.client.Footer(ctx, s.storefront.FooterMenu)
	if err != nil {
		logger.Warn("Footer menu unavailable: %v", err)
		return nil
	}
	return footer
}

// HeaderLinks resolves the header menu, falling back to the default menu.
func (s *LayoutService) HeaderLinks(header *domain.Header) []domain.NavLink {
	menu := domain.FallbackHeaderMenu()
	primary := ""
	if header != nil {
		primary = header.Shop.PrimaryDomainURL
		if header.Menu != nil {
			menu = header.Menu
		}
	}
	return NavLinks(menu, primary, s.storefront.StoreDomain)
}

// FooterLinks resolves the footer menu. Returns nil without a menu or primary domain.
func (s *LayoutService) FooterLinks(header *domain.Header, footer *domain.Footer) []domain.NavLink {
	if footer == nil || footer.Menu == nil || header == nil || header.Shop.PrimaryDomainURL == "" {
		return nil
	}
	return NavLinks(footer.Menu, header.Shop.PrimaryDomainURL, s.storefront.StoreDomain)
}

// MobileLinks prepends the home link to the header links.
func MobileLinks(links []domain.NavLink) []domain.NavLink {
	out := make([]domain.NavLink, 0, len(links)+1)
	out = append(out, domain.NavLink{ID: "home", Title: "Home", URL: "/"})
	return append(out, links...)
}
