package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddProduct(t *testing.T) {
	t.Run("new product is appended with quantity 1", func(t *testing.T) {
		c := NewCart(1)
		c.AddProduct(42)

		assert.Equal(t, []LineItem{{Product: 42, Quantity: 1}}, c.Products)
	})

	t.Run("same product twice increments quantity", func(t *testing.T) {
		c := NewCart(1)
		c.AddProduct(42)
		c.AddProduct(42)

		require.Len(t, c.Products, 1)
		assert.Equal(t, 2, c.Products[0].Quantity)
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		c := NewCart(1)
		c.AddProduct(42)
		c.AddProduct(42)
		c.AddProduct(7)

		assert.Equal(t, []LineItem{
			{Product: 42, Quantity: 2},
			{Product: 7, Quantity: 1},
		}, c.Products)
	})

	t.Run("only first matching line is incremented", func(t *testing.T) {
		c := Cart{ID: 1, Products: []LineItem{
			{Product: 5, Quantity: 1},
			{Product: 5, Quantity: 1},
		}}
		c.AddProduct(5)

		assert.Equal(t, 2, c.Products[0].Quantity)
		assert.Equal(t, 1, c.Products[1].Quantity)
	})
}

func TestCart_Quantity(t *testing.T) {
	c := Cart{ID: 1, Products: []LineItem{{Product: 3, Quantity: 4}}}
	assert.Equal(t, 4, c.Quantity(3))
	assert.Equal(t, 0, c.Quantity(99))
}

func TestNewCart(t *testing.T) {
	c := NewCart(3)
	assert.Equal(t, 3, c.ID)
	assert.NotNil(t, c.Products)
	assert.Empty(t, c.Products)
}

func TestFindCart(t *testing.T) {
	carts := []Cart{
		{ID: 1, Products: []LineItem{}},
		{ID: 2, Products: []LineItem{{Product: 1, Quantity: 1}}},
		{ID: 2, Products: []LineItem{}},
	}

	t.Run("found", func(t *testing.T) {
		c, ok := FindCart(carts, 1)
		require.True(t, ok)
		assert.Equal(t, 1, c.ID)
	})

	t.Run("first match wins", func(t *testing.T) {
		c, ok := FindCart(carts, 2)
		require.True(t, ok)
		assert.Len(t, c.Products, 1)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := FindCart(carts, 99)
		assert.False(t, ok)
	})
}

func TestAddProductToCarts(t *testing.T) {
	input := func() []Cart {
		return []Cart{
			{ID: 1, Products: []LineItem{{Product: 42, Quantity: 1}}},
			{ID: 2, Products: []LineItem{}},
		}
	}

	t.Run("increments matching cart only", func(t *testing.T) {
		out, ok := AddProductToCarts(input(), 1, 42)
		require.True(t, ok)

		assert.Equal(t, []Cart{
			{ID: 1, Products: []LineItem{{Product: 42, Quantity: 2}}},
			{ID: 2, Products: []LineItem{}},
		}, out)
	})

	t.Run("appends to empty cart", func(t *testing.T) {
		out, ok := AddProductToCarts(input(), 2, 7)
		require.True(t, ok)
		assert.Equal(t, []LineItem{{Product: 7, Quantity: 1}}, out[1].Products)
	})

	t.Run("unknown cart is a no-op", func(t *testing.T) {
		out, ok := AddProductToCarts(input(), 99, 7)
		assert.False(t, ok)
		assert.Equal(t, input(), out)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := input()
		_, _ = AddProductToCarts(in, 1, 42)
		assert.Equal(t, 1, in[0].Products[0].Quantity)
	})
}

func TestNotFound(t *testing.T) {
	nf := NewNotFound(99)
	assert.Equal(t, "Cart Not Found!", nf.Message)
	assert.Equal(t, 99, nf.CartID)
	assert.Contains(t, nf.Error(), "99")
}
