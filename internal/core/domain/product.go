package domain

// Product is a catalogue entry as shown on product cards.
type Product struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Handle           string          `json:"handle"`
	Category         string          `json:"category,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	AvailableForSale bool            `json:"availableForSale"`
	PriceRange       PriceRange      `json:"priceRange"`
	FeaturedImage    *Image          `json:"featuredImage,omitempty"`
	SelectedVariant  *ProductVariant `json:"selectedVariant,omitempty"`
}

// PriceRange is the min and max variant price of a product.
type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

// ProductVariant is a purchasable merchandise line.
type ProductVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	Price            Money            `json:"price"`
	Image            *Image           `json:"image,omitempty"`
	SelectedOptions  []SelectedOption `json:"selectedOptions,omitempty"`
	Product          ProductRef       `json:"product"`
}

// ProductRef is the slim product reference carried by variants.
type ProductRef struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Vendor string `json:"vendor,omitempty"`
}

// SelectedOption is one chosen option of a variant (e.g. Size: 250g).
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Collection groups products.
type Collection struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Image  *Image `json:"image,omitempty"`
}

// PageInfo carries cursor pagination state.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor,omitempty"`
	EndCursor       string `json:"endCursor,omitempty"`
}

// ProductConnection is one page of products.
type ProductConnection struct {
	Nodes    []Product `json:"nodes"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// PageRequest selects a page of a connection.
// Either After (forward) or Before (backward) is set, never both.
type PageRequest struct {
	First  int
	After  string
	Before string
}

// HomePage is the data behind the landing page.
// RecommendedProducts is nil when the deferred load failed.
type HomePage struct {
	FeaturedCollection  *Collection
	RecommendedProducts []Product
}
