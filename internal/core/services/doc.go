// Package services implements the driving port interfaces.
// Services contain the storefront logic and orchestrate
// calls to driven ports (adapters).
//
// Besides the services, the package holds the pure pieces the terminal
// UI is built from: the keyed Fetcher that lets the latest submission
// win, the predictive search Project function and the OptimisticCart
// projection.
package services
