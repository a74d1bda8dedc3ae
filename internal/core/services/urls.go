package services

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// internalDomainMarker matches platform-hosted URLs that belong to the store.
const internalDomainMarker = "myshopify.com"

// URLWithTrackingParams appends the search term and the platform's tracking
// parameters to a result URL, e.g. "/products/latte?q=latte&_pos=1".
func URLWithTrackingParams(baseURL, trackingParams, term string) string {
	query := url.Values{"q": []string{term}}.Encode()
	if trackingParams != "" {
		query += "&" + trackingParams
	}
	return baseURL + "?" + query
}

// SearchURL is the search page location for a term.
func SearchURL(term string) string {
	term = trimTerm(term)
	if term == "" {
		return domain.SearchEndpoint
	}
	return domain.SearchEndpoint + "?" + url.Values{"q": []string{term}}.Encode()
}

// ProductURL is the product page location for a handle.
func ProductURL(handle string) string {
	return "/products/" + handle
}

// VariantURL is the product page location with the variant's options selected.
func VariantURL(handle string, options []domain.SelectedOption) string {
	base := ProductURL(handle)
	if len(options) == 0 {
		return base
	}
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, url.QueryEscape(opt.Name)+"="+url.QueryEscape(opt.Value))
	}
	return base + "?" + strings.Join(parts, "&")
}

// NavLinks resolves menu items into renderable links.
// Items without a URL are skipped. URLs on the store's own domains are reduced
// to their path; anything not starting with "/" afterwards is external.
func NavLinks(menu *domain.Menu, primaryDomainURL, publicStoreDomain string) []domain.NavLink {
	if menu == nil {
		return nil
	}
	links := make([]domain.NavLink, 0, len(menu.Items))
	for _, item := range menu.Items {
		if item.URL == "" {
			continue
		}
		link := InternalPath(item.URL, primaryDomainURL, publicStoreDomain)
		links = append(links, domain.NavLink{
			ID:       item.ID,
			Title:    item.Title,
			URL:      link,
			External: !strings.HasPrefix(link, "/"),
		})
	}
	return links
}

// InternalPath strips the scheme and host from URLs on the store's domains.
func InternalPath(raw, primaryDomainURL, publicStoreDomain string) string {
	internal := strings.Contains(raw, internalDomainMarker) ||
		(publicStoreDomain != "" && strings.Contains(raw, publicStoreDomain)) ||
		(primaryDomainURL != "" && strings.Contains(raw, primaryDomainURL))
	if !internal {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
