package model

// NewCart returns an empty cart with the given ID.
// Products is non-nil so the cart serializes as "products": [].
func NewCart(id int) Cart {
	return Cart{ID: id, Products: []LineItem{}}
}

// AddProduct adds one unit of productID to the cart.
// If a line item for the product exists its quantity is incremented,
// otherwise a new line item with quantity 1 is appended.
func (c *Cart) AddProduct(productID int) {
	for i := range c.Products {
		if c.Products[i].Product == productID {
			c.Products[i].Quantity++
			return
		}
	}
	c.Products = append(c.Products, LineItem{Product: productID, Quantity: 1})
}

// Quantity returns the quantity of productID in the cart, or 0.
func (c *Cart) Quantity(productID int) int {
	for _, li := range c.Products {
		if li.Product == productID {
			return li.Quantity
		}
	}
	return 0
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	if c.Products == nil {
		return Cart{ID: c.ID}
	}
	products := make([]LineItem, len(c.Products))
	copy(products, c.Products)
	return Cart{ID: c.ID, Products: products}
}

// FindCart returns the first cart with the given ID.
func FindCart(carts []Cart, id int) (Cart, bool) {
	for _, c := range carts {
		if c.ID == id {
			return c, true
		}
	}
	return Cart{}, false
}

// AddProductToCarts returns a copy of carts with one unit of productID
// added to every cart whose ID is cartID. Other carts pass through
// unchanged. The second return is false when no cart matched, in which
// case the returned collection equals the input.
func AddProductToCarts(carts []Cart, cartID, productID int) ([]Cart, bool) {
	out := make([]Cart, len(carts))
	matched := false
	for i, c := range carts {
		out[i] = c.Clone()
		if c.ID == cartID {
			out[i].AddProduct(productID)
			matched = true
		}
	}
	return out, matched
}
