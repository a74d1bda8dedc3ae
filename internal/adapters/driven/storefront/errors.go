package storefront

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// throttledCode is the GraphQL error code returned when the API throttles a request.
const throttledCode = "THROTTLED"

// GraphQLError is returned when a response carries GraphQL errors.
type GraphQLError struct {
	Operation string
	Errors    []gqlError
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return fmt.Sprintf("storefront %s: %s", e.Operation, strings.Join(msgs, "; "))
}

// HTTPError is returned for unexpected HTTP status codes.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("storefront %s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// RateLimitError indicates the API rate limit was exceeded.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("storefront rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// Unwrap lets callers match domain.ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}
