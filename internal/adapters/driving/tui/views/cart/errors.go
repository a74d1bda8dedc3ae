package cart

import "errors"

// ErrNoCartService indicates that no cart service was provided.
var ErrNoCartService = errors.New("cart service is required")
