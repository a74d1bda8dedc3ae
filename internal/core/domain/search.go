package domain

import "strconv"

// PredictiveSearchLimit is the number of results requested per category
// while the shopper types.
const PredictiveSearchLimit = 5

// SearchEndpoint is the route search requests are issued against.
const SearchEndpoint = "/search"

// SearchFetcherKey identifies the predictive search fetcher.
// All submissions share it so a new keystroke supersedes the previous request.
const SearchFetcherKey = "search"

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results per category.
	Limit int

	// Predictive selects search-as-you-type suggestions over a full product search.
	Predictive bool
}

// SearchParams returns the outbound request parameters for a query.
func (o SearchOptions) SearchParams(term string) map[string]string {
	params := map[string]string{"q": term}
	if o.Limit > 0 {
		params["limit"] = strconv.Itoa(o.Limit)
	}
	if o.Predictive {
		params["predictive"] = "true"
	}
	return params
}

// PredictiveQuery is a suggested query completion.
type PredictiveQuery struct {
	Text           string `json:"text"`
	StyledText     string `json:"styledText"`
	TrackingParams string `json:"trackingParameters,omitempty"`
}

// PredictiveProduct is a product suggestion.
type PredictiveProduct struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	TrackingParams string `json:"trackingParameters,omitempty"`
	Image          *Image `json:"image,omitempty"`
	Price          *Money `json:"price,omitempty"`
}

// PredictiveCollection is a collection suggestion.
type PredictiveCollection struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	TrackingParams string `json:"trackingParameters,omitempty"`
	Image          *Image `json:"image,omitempty"`
}

// PredictivePage is an online store page suggestion.
type PredictivePage struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	TrackingParams string `json:"trackingParameters,omitempty"`
}

// PredictiveArticle is a blog article suggestion.
type PredictiveArticle struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	BlogHandle     string `json:"blogHandle,omitempty"`
	TrackingParams string `json:"trackingParameters,omitempty"`
	Image          *Image `json:"image,omitempty"`
}

// PredictiveSearchResponse is the raw payload of a predictive search.
// Any category may be absent and query suggestions may contain nil entries.
type PredictiveSearchResponse struct {
	Term        string                 `json:"term"`
	Products    []PredictiveProduct    `json:"products"`
	Queries     []*PredictiveQuery     `json:"queries"`
	Collections []PredictiveCollection `json:"collections"`
	Pages       []PredictivePage       `json:"pages"`
	Articles    []PredictiveArticle    `json:"articles"`
}

// PredictiveSearchItems holds results keyed by category, each ordered as ranked.
type PredictiveSearchItems struct {
	Products    []PredictiveProduct    `json:"products"`
	Queries     []PredictiveQuery      `json:"queries"`
	Collections []PredictiveCollection `json:"collections"`
	Pages       []PredictivePage       `json:"pages"`
	Articles    []PredictiveArticle    `json:"articles"`
}

// PredictiveSearchResult is the projected view model of a predictive search.
type PredictiveSearchResult struct {
	Type  string                `json:"type"`
	Term  string                `json:"term"`
	Items PredictiveSearchItems `json:"items"`
	Total int                   `json:"total"`
}

// IsEmpty returns true if no category holds an item.
func (r PredictiveSearchResult) IsEmpty() bool {
	return r.Total == 0
}

// SearchResultsPage is one page of a regular product search.
type SearchResultsPage struct {
	Term     string            `json:"term"`
	Products ProductConnection `json:"products"`
}

// FetchState is the lifecycle flag of a keyed fetch.
type FetchState string

// Fetch states.
const (
	FetchIdle    FetchState = "idle"
	FetchLoading FetchState = "loading"
	FetchError   FetchState = "error"
)

// String returns the string representation.
func (s FetchState) String() string {
	return string(s)
}

// EmptyState selects which empty placeholder a drawer shows.
type EmptyState string

// Empty states for the predictive search drawer.
const (
	// EmptyIdle is shown before a query has been typed.
	EmptyIdle EmptyState = "idle"

	// EmptyNotFound is shown when a query matched nothing.
	EmptyNotFound EmptyState = "not-found"
)
