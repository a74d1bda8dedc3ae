// Package domain defines the core storefront entities for CoffeeHunt.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product, Collection: Catalogue entries returned by the Storefront API
//   - Cart, CartLine: The shopper's cart and its optimistic view
//   - PredictiveSearchResponse, PredictiveSearchResult: Search-as-you-type payloads
//   - Menu, MenuItem, Shop: Header and footer navigation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
