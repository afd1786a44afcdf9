package model

import (
	"encoding/json"
	"fmt"
)

// storedCart mirrors Cart with pointer elements so null entries in the
// file can be told apart from zero values.
type storedCart struct {
	ID       int         `json:"id"`
	Products []*LineItem `json:"products"`
}

// DecodeCarts parses a JSON array of carts.
// Carts with a missing or null product list get an empty one.
// A null cart or null line item is a parse error.
func DecodeCarts(data []byte) ([]Cart, error) {
	var stored []*storedCart
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse carts: %w", err)
	}

	// a "null" document decodes to an empty collection
	carts := make([]Cart, 0, len(stored))
	for i, sc := range stored {
		if sc == nil {
			return nil, fmt.Errorf("failed to parse carts: element %d is null", i)
		}
		products := make([]LineItem, 0, len(sc.Products))
		for j, li := range sc.Products {
			if li == nil {
				return nil, fmt.Errorf("failed to parse carts: cart %d line item %d is null", sc.ID, j)
			}
			products = append(products, *li)
		}
		carts = append(carts, Cart{ID: sc.ID, Products: products})
	}
	return carts, nil
}

// EncodeCarts serializes the full collection as a JSON array.
// Order is preserved; carts are never sorted.
// With indent set the output is two-space indented.
func EncodeCarts(carts []Cart, indent bool) ([]byte, error) {
	out := make([]Cart, len(carts))
	for i, c := range carts {
		if c.Products == nil {
			c.Products = []LineItem{}
		}
		out[i] = c
	}

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode carts: %w", err)
	}
	return data, nil
}
