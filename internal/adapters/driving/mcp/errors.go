// Package mcp provides an MCP (Model Context Protocol) server adapter for coffeehunt.
// It lets AI assistants search the storefront, read its menus and manage the session cart.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrNoCartService is returned by cart tools when the server has no cart service.
var ErrNoCartService = errors.New("mcp: cart service is not configured")
