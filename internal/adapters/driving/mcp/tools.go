package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

// PredictiveSearchInput is the input schema for the predictive_search tool.
type PredictiveSearchInput struct {
	Query string `json:"query" jsonschema:"the partially typed search term"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum suggestions per category (default 5)"`
}

// PredictiveSearchOutput is the output schema for the predictive_search tool.
type PredictiveSearchOutput struct {
	Term        string          `json:"term"`
	Total       int             `json:"total"`
	Queries     []string        `json:"queries"`
	Products    []ProductOutput `json:"products"`
	Collections []LinkOutput    `json:"collections"`
	Pages       []LinkOutput    `json:"pages"`
	Articles    []LinkOutput    `json:"articles"`
}

// ProductOutput is a product suggestion or search hit.
type ProductOutput struct {
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	URL       string `json:"url"`
	Price     string `json:"price,omitempty"`
	VariantID string `json:"variant_id,omitempty"`
	Available bool   `json:"available"`
}

// LinkOutput is a titled storefront link.
type LinkOutput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SearchProductsInput is the input schema for the search_products tool.
type SearchProductsInput struct {
	Query string `json:"query" jsonschema:"the search term"`
	First int    `json:"first,omitempty" jsonschema:"page size (default from settings)"`
	After string `json:"after,omitempty" jsonschema:"cursor of the previous page's last product"`
}

// SearchProductsOutput is the output schema for the search_products tool.
type SearchProductsOutput struct {
	Term        string          `json:"term"`
	Products    []ProductOutput `json:"products"`
	HasNextPage bool            `json:"has_next_page"`
	EndCursor   string          `json:"end_cursor,omitempty"`
}

// CartViewInput is the empty input of the cart_view tool.
type CartViewInput struct{}

// CartAddInput is the input schema for the cart_add tool.
type CartAddInput struct {
	VariantID string `json:"variant_id" jsonschema:"the product variant to add"`
	Quantity  int    `json:"quantity,omitempty" jsonschema:"number of units (default 1)"`
}

// CartOutput summarises the session cart.
type CartOutput struct {
	ID            string           `json:"id,omitempty"`
	CheckoutURL   string           `json:"checkout_url,omitempty"`
	TotalQuantity int              `json:"total_quantity"`
	Subtotal      string           `json:"subtotal,omitempty"`
	Lines         []CartLineOutput `json:"lines"`
}

// CartLineOutput is one cart line.
type CartLineOutput struct {
	ID       string `json:"id"`
	Product  string `json:"product"`
	Variant  string `json:"variant,omitempty"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "predictive_search",
		Description: "Suggest products, collections, pages and articles for a partially typed term",
	}, s.handlePredictiveSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_products",
		Description: "Search the storefront's products, one page at a time",
	}, s.handleSearchProducts)

	if s.ports.Cart == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cart_view",
		Description: "Show the session cart",
	}, s.handleCartView)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cart_add",
		Description: "Add a product variant to the session cart",
	}, s.handleCartAdd)
}

// handlePredictiveSearch handles the predictive_search tool invocation.
func (s *Server) handlePredictiveSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PredictiveSearchInput,
) (*mcp.CallToolResult, PredictiveSearchOutput, error) {
	raw, err := s.ports.Search.PredictiveSearch(ctx, input.Query, domain.SearchOptions{
		Limit:      input.Limit,
		Predictive: true,
	})
	if err != nil {
		return nil, PredictiveSearchOutput{}, err
	}

	result := services.Project(raw)
	output := PredictiveSearchOutput{
		Term:        result.Term,
		Total:       result.Total,
		Queries:     make([]string, 0, len(result.Items.Queries)),
		Products:    make([]ProductOutput, 0, len(result.Items.Products)),
		Collections: make([]LinkOutput, 0, len(result.Items.Collections)),
		Pages:       make([]LinkOutput, 0, len(result.Items.Pages)),
		Articles:    make([]LinkOutput, 0, len(result.Items.Articles)),
	}

	for _, q := range result.Items.Queries {
		output.Queries = append(output.Queries, q.Text)
	}
	for _, p := range result.Items.Products {
		product := ProductOutput{
			Title:     p.Title,
			Handle:    p.Handle,
			URL:       services.URLWithTrackingParams(services.ProductURL(p.Handle), p.TrackingParams, result.Term),
			Available: true,
		}
		if p.Price != nil {
			product.Price = p.Price.Format()
		}
		output.Products = append(output.Products, product)
	}
	for _, c := range result.Items.Collections {
		output.Collections = append(output.Collections, LinkOutput{
			Title: c.Title,
			URL:   services.URLWithTrackingParams("/collections/"+c.Handle, c.TrackingParams, result.Term),
		})
	}
	for _, p := range result.Items.Pages {
		output.Pages = append(output.Pages, LinkOutput{
			Title: p.Title,
			URL:   services.URLWithTrackingParams("/pages/"+p.Handle, p.TrackingParams, result.Term),
		})
	}
	for _, a := range result.Items.Articles {
		output.Articles = append(output.Articles, LinkOutput{
			Title: a.Title,
			URL:   services.URLWithTrackingParams("/blogs/"+a.BlogHandle+"/"+a.Handle, a.TrackingParams, result.Term),
		})
	}

	return nil, output, nil
}

// handleSearchProducts handles the search_products tool invocation.
func (s *Server) handleSearchProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchProductsInput,
) (*mcp.CallToolResult, SearchProductsOutput, error) {
	page, err := s.ports.Search.Search(ctx, input.Query, domain.PageRequest{
		First: input.First,
		After: input.After,
	})
	if err != nil {
		return nil, SearchProductsOutput{}, err
	}

	output := SearchProductsOutput{
		Term:        page.Term,
		Products:    make([]ProductOutput, 0, len(page.Products.Nodes)),
		HasNextPage: page.Products.PageInfo.HasNextPage,
		EndCursor:   page.Products.PageInfo.EndCursor,
	}
	for i := range page.Products.Nodes {
		output.Products = append(output.Products, productOutput(&page.Products.Nodes[i]))
	}
	return nil, output, nil
}

func productOutput(p *domain.Product) ProductOutput {
	out := ProductOutput{
		Title:     p.Title,
		Handle:    p.Handle,
		URL:       services.ProductURL(p.Handle),
		Price:     p.PriceRange.MinVariantPrice.Format(),
		Available: p.AvailableForSale,
	}
	if p.SelectedVariant != nil {
		out.VariantID = p.SelectedVariant.ID
		out.URL = services.VariantURL(p.Handle, p.SelectedVariant.SelectedOptions)
	}
	return out
}

// handleCartView handles the cart_view tool invocation.
func (s *Server) handleCartView(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CartViewInput,
) (*mcp.CallToolResult, CartOutput, error) {
	if s.ports.Cart == nil {
		return nil, CartOutput{}, ErrNoCartService
	}
	cart, err := s.ports.Cart.Get(ctx)
	if err != nil {
		return nil, CartOutput{}, fmt.Errorf("loading cart: %w", err)
	}
	return nil, cartOutput(cart), nil
}

// handleCartAdd handles the cart_add tool invocation.
func (s *Server) handleCartAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CartAddInput,
) (*mcp.CallToolResult, CartOutput, error) {
	if s.ports.Cart == nil {
		return nil, CartOutput{}, ErrNoCartService
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	mutation := domain.CartMutation{
		Action: domain.CartLinesAdd,
		Add:    []domain.CartLineInput{{MerchandiseID: input.VariantID, Quantity: quantity}},
	}
	if err := mutation.Validate(); err != nil {
		return nil, CartOutput{}, err
	}

	cart, err := s.ports.Cart.Apply(ctx, mutation)
	if err != nil {
		return nil, CartOutput{}, fmt.Errorf("adding to cart: %w", err)
	}
	return nil, cartOutput(cart), nil
}

func cartOutput(cart *domain.Cart) CartOutput {
	out := CartOutput{Lines: []CartLineOutput{}}
	if cart == nil {
		return out
	}

	out.ID = cart.ID
	out.CheckoutURL = cart.CheckoutURL
	out.TotalQuantity = cart.TotalQuantity
	out.Subtotal = cart.Cost.SubtotalAmount.Format()
	for _, line := range cart.Lines {
		out.Lines = append(out.Lines, CartLineOutput{
			ID:       line.ID,
			Product:  line.Merchandise.Product.Title,
			Variant:  line.Merchandise.Title,
			Quantity: line.Quantity,
			Total:    line.Cost.TotalAmount.Format(),
		})
	}
	return out
}
