package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
	"github.com/custodia-labs/coffeehunt-cli/internal/core/services"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewHome, "home"},
		{ViewSearchResults, "search"},
		{ViewTypography, "typography"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewType_StartsAtHome(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewHome, v)
}

func TestPageDirection_DefaultsToReplace(t *testing.T) {
	var msg SearchPageLoaded
	assert.Equal(t, PageReplace, msg.Direction)
}

func TestPredictiveSearchResolved_CarriesSubmission(t *testing.T) {
	sub := services.Submission{Key: domain.SearchFetcherKey, Seq: 3, Input: "arabica"}
	msg := PredictiveSearchResolved{Sub: sub, Err: errors.New("boom")}

	assert.Equal(t, uint64(3), msg.Sub.Seq)
	assert.Equal(t, "arabica", msg.Sub.Input)
	assert.EqualError(t, msg.Err, "boom")
}

func TestAsideOpened(t *testing.T) {
	msg := AsideOpened{Aside: domain.AsideCart}
	assert.Equal(t, domain.AsideCart, msg.Aside)
}

func TestAddProductToCart(t *testing.T) {
	variant := &domain.ProductVariant{ID: "gid://shopify/ProductVariant/7", AvailableForSale: true}

	tests := []struct {
		name    string
		product *domain.Product
		want    any
	}{
		{"nil product", nil, nil},
		{"available", &domain.Product{Title: "Kenya AA", SelectedVariant: variant}, AddToCart{Variant: *variant}},
		{"no variant", &domain.Product{Title: "Geisha"}, StatusMessage{Text: "Geisha is sold out"}},
		{
			"variant unavailable",
			&domain.Product{Title: "Geisha", SelectedVariant: &domain.ProductVariant{ID: "v"}},
			StatusMessage{Text: "Geisha is sold out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := AddProductToCart(tt.product)
			if tt.want == nil {
				assert.Nil(t, cmd)
				return
			}
			assert.Equal(t, tt.want, cmd())
		})
	}
}
