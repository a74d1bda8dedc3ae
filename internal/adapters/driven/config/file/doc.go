// Package file provides the TOML-backed configuration store.
//
// Settings live in ~/.coffeehunt/config.toml as nested tables:
//
//	[storefront]
//	domain = "coffeehunt.myshopify.com"
//	token = "..."
//
//	[ui]
//	theme = "coffee"
//
// and are addressed with flattened dot keys ("storefront.domain"). Watch
// reloads the file when another process edits it.
package file
