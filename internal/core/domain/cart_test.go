package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartUpdateKey(t *testing.T) {
	assert.Equal(t, "LinesUpdate-a-b", CartUpdateKey([]string{"a", "b"}))
	assert.Equal(t, "LinesUpdate", CartUpdateKey(nil))
}

func TestCartMutation_Key(t *testing.T) {
	tests := []struct {
		name string
		m    CartMutation
		want string
	}{
		{
			name: "update",
			m:    CartMutation{Action: CartLinesUpdate, Update: []CartLineUpdateInput{{ID: "line-1", Quantity: 2}}},
			want: "LinesUpdate-line-1",
		},
		{
			name: "remove shares the update key",
			m:    CartMutation{Action: CartLinesRemove, LineIDs: []string{"line-1"}},
			want: "LinesUpdate-line-1",
		},
		{
			name: "add",
			m:    CartMutation{Action: CartLinesAdd, Add: []CartLineInput{{MerchandiseID: "v1", Quantity: 1}}},
			want: "LinesAdd-v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Key())
		})
	}
}

func TestCartMutation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       CartMutation
		wantErr bool
	}{
		{"valid add", CartMutation{Action: CartLinesAdd, Add: []CartLineInput{{MerchandiseID: "v1", Quantity: 1}}}, false},
		{"add without lines", CartMutation{Action: CartLinesAdd}, true},
		{"add zero quantity", CartMutation{Action: CartLinesAdd, Add: []CartLineInput{{MerchandiseID: "v1"}}}, true},
		{"update to zero", CartMutation{Action: CartLinesUpdate, Update: []CartLineUpdateInput{{ID: "l1"}}}, false},
		{"update negative", CartMutation{Action: CartLinesUpdate, Update: []CartLineUpdateInput{{ID: "l1", Quantity: -1}}}, true},
		{"remove without ids", CartMutation{Action: CartLinesRemove}, true},
		{"unknown action", CartMutation{Action: "Nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCartLine_QuantityControls(t *testing.T) {
	tests := []struct {
		name string
		line CartLine
		want LineQuantityControls
	}{
		{
			name: "single unit cannot decrease",
			line: CartLine{Quantity: 1},
			want: LineQuantityControls{DecreaseTo: 0, IncreaseTo: 2, DecreaseEnabled: false, RemoveEnabled: true},
		},
		{
			name: "several units",
			line: CartLine{Quantity: 3},
			want: LineQuantityControls{DecreaseTo: 2, IncreaseTo: 4, DecreaseEnabled: true, RemoveEnabled: true},
		},
		{
			name: "optimistic line is locked",
			line: CartLine{Quantity: 3, IsOptimistic: true},
			want: LineQuantityControls{DecreaseTo: 2, IncreaseTo: 4, DecreaseEnabled: false, RemoveEnabled: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.QuantityControls())
		})
	}
}

func TestCart_ItemCountLabel(t *testing.T) {
	var nilCart *Cart
	assert.Equal(t, "Your cart is empty.", nilCart.ItemCountLabel())
	assert.Equal(t, "Your cart is empty.", (&Cart{}).ItemCountLabel())
	assert.Equal(t, "You have 3 items in your cart.", (&Cart{TotalQuantity: 3}).ItemCountLabel())
}

func TestCartUserErrors(t *testing.T) {
	assert.NoError(t, CartUserErrors(nil))

	err := CartUserErrors([]CartUserError{{Message: "sold out"}, {Message: "limit reached"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserError))
	assert.Contains(t, err.Error(), "sold out; limit reached")
}
