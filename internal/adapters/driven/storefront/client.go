// Package storefront implements driven.StorefrontClient over the
// commerce platform's Storefront GraphQL API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/ports/driven"
	"github.com/custodia-labs/coffeehunt-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.StorefrontClient = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// HeaderAccessToken carries the public Storefront API token.
	HeaderAccessToken = "X-Shopify-Storefront-Access-Token" //nolint:gosec // header name

	// HeaderRequestID correlates requests in logs.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512
)

// Client talks to the Storefront API.
type Client struct {
	endpoint    string
	accessToken string
	http        *http.Client
	rateLimiter *RateLimiter
	metrics     *Metrics
	cache       *queryCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRegisterer registers the client's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetrics(reg)
	}
}

// WithRateLimiter replaces the rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = rl
	}
}

// NewClient creates a Storefront API client.
func NewClient(settings domain.StorefrontSettings, opts ...Option) (*Client, error) {
	if !settings.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}
	if settings.APIVersion == "" {
		settings.APIVersion = domain.DefaultAPIVersion
	}
	ttl := settings.CacheTTL
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}

	c := &Client{
		endpoint:    settings.Endpoint(),
		accessToken: settings.AccessToken,
		http:        &http.Client{Timeout: DefaultTimeout},
		rateLimiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	c.cache = newQueryCache(ttl, c.metrics)
	return c, nil
}

// Endpoint returns the GraphQL endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// PurgeCache drops cached layout responses.
func (c *Client) PurgeCache() {
	c.cache.purge()
}

// Header loads the shop and the header menu by handle.
func (c *Client) Header(ctx context.Context, menuHandle string) (*domain.Header, error) {
	vars := map[string]any{"headerMenuHandle": menuHandle}
	var data headerData
	if err := c.cachedQuery(ctx, "Header", headerQuery, vars, &data); err != nil {
		return nil, err
	}
	return &domain.Header{
		Shop: domain.Shop{
			ID:               data.Shop.ID,
			Name:             data.Shop.Name,
			Description:      data.Shop.Description,
			PrimaryDomainURL: data.Shop.PrimaryDomain.URL,
		},
		Menu: data.Menu.toDomain(),
	}, nil
}

// Footer loads the footer menu by handle.
func (c *Client) Footer(ctx context.Context, menuHandle string) (*domain.Footer, error) {
	vars := map[string]any{"footerMenuHandle": menuHandle}
	var data footerData
	if err := c.cachedQuery(ctx, "Footer", footerQuery, vars, &data); err != nil {
		return nil, err
	}
	return &domain.Footer{Menu: data.Menu.toDomain()}, nil
}

// FeaturedCollection returns the most recently updated collection.
func (c *Client) FeaturedCollection(ctx context.Context) (*domain.Collection, error) {
	var data featuredCollectionData
	if err := c.cachedQuery(ctx, "FeaturedCollection", featuredCollectionQuery, nil, &data); err != nil {
		return nil, err
	}
	if len(data.Collections.Nodes) == 0 {
		return nil, nil
	}
	col := data.Collections.Nodes[0]
	return &col, nil
}

// RecommendedProducts returns the most recently updated products.
func (c *Client) RecommendedProducts(ctx context.Context, first int) ([]domain.Product, error) {
	vars := map[string]any{"first": first}
	var data productsData
	if err := c.cachedQuery(ctx, "RecommendedProducts", recommendedProductsQuery, vars, &data); err != nil {
		return nil, err
	}
	return productsToDomain(data.Products.Nodes), nil
}

// PredictiveSearch returns search-as-you-type suggestions. Never cached.
func (c *Client) PredictiveSearch(
	ctx context.Context, term string, limit int,
) (*domain.PredictiveSearchResponse, error) {
	vars := map[string]any{
		"term":       term,
		"limit":      limit,
		"limitScope": "EACH",
	}
	var data predictiveSearchData
	if err := c.query(ctx, "PredictiveSearch", predictiveSearchQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.toDomain(term), nil
}

// SearchProducts runs a regular product search, one page at a time.
func (c *Client) SearchProducts(
	ctx context.Context, term string, page domain.PageRequest,
) (*domain.ProductConnection, error) {
	vars := map[string]any{"term": term}
	if page.Before != "" {
		vars["last"] = page.First
		vars["startCursor"] = page.Before
	} else {
		vars["first"] = page.First
		if page.After != "" {
			vars["endCursor"] = page.After
		}
	}
	var data productsData
	if err := c.query(ctx, "RegularSearch", searchProductsQuery, vars, &data); err != nil {
		return nil, err
	}
	return &domain.ProductConnection{
		Nodes:    productsToDomain(data.Products.Nodes),
		PageInfo: data.Products.PageInfo,
	}, nil
}

// Cart loads a cart by id.
func (c *Client) Cart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var data cartData
	if err := c.query(ctx, "Cart", cartQuery, map[string]any{"cartId": cartID}, &data); err != nil {
		return nil, err
	}
	if data.Cart == nil {
		return nil, domain.ErrCartNotFound
	}
	return data.Cart.toDomain(), nil
}

// CartCreate creates a cart holding the given lines.
func (c *Client) CartCreate(ctx context.Context, lines []domain.CartLineInput) (*domain.Cart, error) {
	return c.mutateCart(ctx, "CartCreate", cartCreateMutation, map[string]any{"lines": lines})
}

// CartLinesAdd adds lines to an existing cart.
func (c *Client) CartLinesAdd(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	return c.mutateCart(ctx, "CartLinesAdd", cartLinesAddMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	})
}

// CartLinesUpdate changes line quantities.
func (c *Client) CartLinesUpdate(
	ctx context.Context, cartID string, lines []domain.CartLineUpdateInput,
) (*domain.Cart, error) {
	return c.mutateCart(ctx, "CartLinesUpdate", cartLinesUpdateMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	})
}

// CartLinesRemove removes lines from the cart.
func (c *Client) CartLinesRemove(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	return c.mutateCart(ctx, "CartLinesRemove", cartLinesRemoveMutation, map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	})
}

func (c *Client) mutateCart(ctx context.Context, operation, doc string, vars map[string]any) (*domain.Cart, error) {
	var data cartMutationData
	if err := c.query(ctx, operation, doc, vars, &data); err != nil {
		return nil, err
	}
	payload := data.payload()
	if payload == nil {
		return nil, fmt.Errorf("storefront %s: empty payload", operation)
	}
	if err := domain.CartUserErrors(payload.UserErrors); err != nil {
		return nil, err
	}
	if payload.Cart == nil {
		return nil, domain.ErrCartNotFound
	}
	return payload.Cart.toDomain(), nil
}

func (c *Client) cachedQuery(ctx context.Context, operation, doc string, vars map[string]any, out any) error {
	data, err := c.cache.load(ctx, operation, vars, func(ctx context.Context) (json.RawMessage, error) {
		return c.execute(ctx, operation, doc, vars)
	})
	if err != nil {
		return err
	}
	return decodeData(operation, data, out)
}

func (c *Client) query(ctx context.Context, operation, doc string, vars map[string]any, out any) error {
	data, err := c.execute(ctx, operation, doc, vars)
	if err != nil {
		return err
	}
	return decodeData(operation, data, out)
}

// execute sends one GraphQL request and returns its data member.
func (c *Client) execute(ctx context.Context, operation, doc string, vars map[string]any) (json.RawMessage, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(gqlRequest{Query: doc, OperationName: operation, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderAccessToken, c.accessToken)
	req.Header.Set(HeaderRequestID, requestID)

	log := logger.L().With(zap.String("operation", operation), zap.String("request_id", requestID))
	log.Debug("storefront request", zap.Any("variables", vars))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(operation, outcomeFor(err), time.Since(start).Seconds())
		return nil, fmt.Errorf("storefront %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckResponse(resp); err != nil {
		c.metrics.throttled.Inc()
		c.metrics.observe(operation, "throttled", time.Since(start).Seconds())
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.metrics.observe(operation, "http_error", time.Since(start).Seconds())
		return nil, &HTTPError{Operation: operation, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		c.metrics.observe(operation, "decode_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("decode %s response: %w", operation, err)
	}
	if len(gr.Errors) > 0 {
		for _, e := range gr.Errors {
			if e.Extensions.Code == throttledCode {
				c.metrics.throttled.Inc()
				c.metrics.observe(operation, "throttled", time.Since(start).Seconds())
				return nil, c.rateLimiter.Throttle(DefaultBackoff)
			}
		}
		c.metrics.observe(operation, "graphql_error", time.Since(start).Seconds())
		return nil, &GraphQLError{Operation: operation, Errors: gr.Errors}
	}

	c.metrics.observe(operation, "ok", time.Since(start).Seconds())
	log.Debug("storefront response", zap.Duration("elapsed", time.Since(start)))
	return gr.Data, nil
}

func decodeData(operation string, data json.RawMessage, out any) error {
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("storefront %s: empty data", operation)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", operation, err)
	}
	return nil
}

func outcomeFor(err error) string {
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	return "transport_error"
}
