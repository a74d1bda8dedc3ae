package storefront

import (
	"encoding/json"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// Wire types mirror the GraphQL response shapes. They are converted to
// domain types before leaving the package.

type gqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

type wireCategory struct {
	Name string `json:"name"`
}

type wireProduct struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Handle           string            `json:"handle"`
	Category         *wireCategory     `json:"category"`
	Tags             []string          `json:"tags"`
	AvailableForSale bool              `json:"availableForSale"`
	FeaturedImage    *domain.Image     `json:"featuredImage"`
	PriceRange       domain.PriceRange `json:"priceRange"`
}

func (p wireProduct) toDomain() domain.Product {
	out := domain.Product{
		ID:               p.ID,
		Title:            p.Title,
		Handle:           p.Handle,
		Tags:             p.Tags,
		AvailableForSale: p.AvailableForSale,
		FeaturedImage:    p.FeaturedImage,
		PriceRange:       p.PriceRange,
	}
	if p.Category != nil {
		out.Category = p.Category.Name
	}
	return out
}

func productsToDomain(nodes []wireProduct) []domain.Product {
	out := make([]domain.Product, 0, len(nodes))
	for _, n := range nodes {
		// Search may return non-product nodes as empty objects.
		if n.ID == "" {
			continue
		}
		out = append(out, n.toDomain())
	}
	return out
}

type wireMenu struct {
	ID    string         `json:"id"`
	Items []wireMenuItem `json:"items"`
}

type wireMenuItem struct {
	ID         string         `json:"id"`
	ResourceID *string        `json:"resourceId"`
	Tags       []string       `json:"tags"`
	Title      string         `json:"title"`
	Type       string         `json:"type"`
	URL        *string        `json:"url"`
	Items      []wireMenuItem `json:"items"`
}

func (m *wireMenu) toDomain() *domain.Menu {
	if m == nil {
		return nil
	}
	return &domain.Menu{ID: m.ID, Items: menuItemsToDomain(m.Items)}
}

func menuItemsToDomain(items []wireMenuItem) []domain.MenuItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.MenuItem, 0, len(items))
	for _, it := range items {
		item := domain.MenuItem{
			ID:    it.ID,
			Tags:  it.Tags,
			Title: it.Title,
			Type:  domain.MenuItemType(it.Type),
			Items: menuItemsToDomain(it.Items),
		}
		if it.ResourceID != nil {
			item.ResourceID = *it.ResourceID
		}
		if it.URL != nil {
			item.URL = *it.URL
		}
		out = append(out, item)
	}
	return out
}

type headerData struct {
	Shop struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		PrimaryDomain struct {
			URL string `json:"url"`
		} `json:"primaryDomain"`
	} `json:"shop"`
	Menu *wireMenu `json:"menu"`
}

type footerData struct {
	Menu *wireMenu `json:"menu"`
}

type featuredCollectionData struct {
	Collections struct {
		Nodes []domain.Collection `json:"nodes"`
	} `json:"collections"`
}

type productsData struct {
	Products struct {
		Nodes    []wireProduct   `json:"nodes"`
		PageInfo domain.PageInfo `json:"pageInfo"`
	} `json:"products"`
}

type predictiveSearchData struct {
	PredictiveSearch *struct {
		Articles []struct {
			ID             string `json:"id"`
			Title          string `json:"title"`
			Handle         string `json:"handle"`
			TrackingParams string `json:"trackingParameters"`
			Blog           struct {
				Handle string `json:"handle"`
			} `json:"blog"`
			Image *domain.Image `json:"image"`
		} `json:"articles"`
		Collections []domain.PredictiveCollection `json:"collections"`
		Pages       []domain.PredictivePage       `json:"pages"`
		Products    []struct {
			ID             string `json:"id"`
			Title          string `json:"title"`
			Handle         string `json:"handle"`
			TrackingParams string `json:"trackingParameters"`
			Variant        *struct {
				Image *domain.Image `json:"image"`
				Price *domain.Money `json:"price"`
			} `json:"selectedOrFirstAvailableVariant"`
		} `json:"products"`
		Queries []*domain.PredictiveQuery `json:"queries"`
	} `json:"predictiveSearch"`
}

func (d predictiveSearchData) toDomain(term string) *domain.PredictiveSearchResponse {
	out := &domain.PredictiveSearchResponse{Term: term}
	ps := d.PredictiveSearch
	if ps == nil {
		return out
	}
	for _, a := range ps.Articles {
		out.Articles = append(out.Articles, domain.PredictiveArticle{
			ID:             a.ID,
			Title:          a.Title,
			Handle:         a.Handle,
			BlogHandle:     a.Blog.Handle,
			TrackingParams: a.TrackingParams,
			Image:          a.Image,
		})
	}
	for _, p := range ps.Products {
		prod := domain.PredictiveProduct{
			ID:             p.ID,
			Title:          p.Title,
			Handle:         p.Handle,
			TrackingParams: p.TrackingParams,
		}
		if p.Variant != nil {
			prod.Image = p.Variant.Image
			prod.Price = p.Variant.Price
		}
		out.Products = append(out.Products, prod)
	}
	out.Collections = ps.Collections
	out.Pages = ps.Pages
	out.Queries = ps.Queries
	return out
}

type wireCart struct {
	ID            string          `json:"id"`
	CheckoutURL   string          `json:"checkoutUrl"`
	TotalQuantity int             `json:"totalQuantity"`
	Note          *string         `json:"note"`
	Cost          domain.CartCost `json:"cost"`
	Lines         struct {
		Nodes []struct {
			ID          string                `json:"id"`
			Quantity    int                   `json:"quantity"`
			Cost        domain.CartLineCost   `json:"cost"`
			Merchandise domain.ProductVariant `json:"merchandise"`
		} `json:"nodes"`
	} `json:"lines"`
}

func (c *wireCart) toDomain() *domain.Cart {
	if c == nil {
		return nil
	}
	out := &domain.Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		TotalQuantity: c.TotalQuantity,
		Cost:          c.Cost,
		Lines:         make([]domain.CartLine, 0, len(c.Lines.Nodes)),
	}
	if c.Note != nil {
		out.Note = *c.Note
	}
	for _, n := range c.Lines.Nodes {
		out.Lines = append(out.Lines, domain.CartLine{
			ID:          n.ID,
			Quantity:    n.Quantity,
			Cost:        n.Cost,
			Merchandise: n.Merchandise,
		})
	}
	return out
}

type cartData struct {
	Cart *wireCart `json:"cart"`
}

type cartPayload struct {
	Cart       *wireCart              `json:"cart"`
	UserErrors []domain.CartUserError `json:"userErrors"`
}

type cartMutationData struct {
	CartCreate      *cartPayload `json:"cartCreate"`
	CartLinesAdd    *cartPayload `json:"cartLinesAdd"`
	CartLinesUpdate *cartPayload `json:"cartLinesUpdate"`
	CartLinesRemove *cartPayload `json:"cartLinesRemove"`
}

func (d cartMutationData) payload() *cartPayload {
	switch {
	case d.CartCreate != nil:
		return d.CartCreate
	case d.CartLinesAdd != nil:
		return d.CartLinesAdd
	case d.CartLinesUpdate != nil:
		return d.CartLinesUpdate
	default:
		return d.CartLinesRemove
	}
}
