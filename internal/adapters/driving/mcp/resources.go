package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

const (
	// uriScheme is the custom URI scheme for coffeehunt resources.
	uriScheme = "coffeehunt://"

	// HeaderMenuURI lists the header navigation links.
	HeaderMenuURI = uriScheme + "menu/header"

	// FooterMenuURI lists the footer navigation links.
	FooterMenuURI = uriScheme + "menu/footer"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Layout == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         HeaderMenuURI,
		Name:        "header-menu",
		Description: "Header navigation links of the storefront",
		MIMEType:    "application/json",
	}, s.handleHeaderMenuResource)

	s.server.AddResource(&mcp.Resource{
		URI:         FooterMenuURI,
		Name:        "footer-menu",
		Description: "Footer navigation links of the storefront",
		MIMEType:    "application/json",
	}, s.handleFooterMenuResource)
}

// handleHeaderMenuResource returns the header links. When the header cannot
// be loaded the fallback menu is listed.
func (s *Server) handleHeaderMenuResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	header, err := s.ports.Layout.Header(ctx)
	if err != nil {
		logger.Warn("Header unavailable, listing fallback menu: %v", err)
		header = nil
	}
	return linksResult(req.Params.URI, s.ports.Layout.HeaderLinks(header))
}

// handleFooterMenuResource returns the footer links, or an empty list when
// the footer menu is missing.
func (s *Server) handleFooterMenuResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	header, err := s.ports.Layout.Header(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading header: %w", err)
	}
	footer := s.ports.Layout.Footer(ctx)
	return linksResult(req.Params.URI, s.ports.Layout.FooterLinks(header, footer))
}

func linksResult(uri string, links []domain.NavLink) (*mcp.ReadResourceResult, error) {
	if links == nil {
		links = []domain.NavLink{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling links: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
