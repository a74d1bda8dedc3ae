package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingCartService is returned when the cart service is not provided.
var ErrMissingCartService = errors.New("tui: cart service is required")

// ErrMissingLayoutService is returned when the layout service is not provided.
var ErrMissingLayoutService = errors.New("tui: layout service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrNoBrowser is returned when a link cannot be opened.
var ErrNoBrowser = errors.New("tui: no browser opener configured")
