// Package model defines the core data structures for carts.
package model

import "fmt"

// NotFoundMessage is the message carried by a NotFound result.
const NotFoundMessage = "Cart Not Found!"

// LineItem is a product and its quantity within a cart.
type LineItem struct {
	Product  int `json:"product"`
	Quantity int `json:"quantity"`
}

// Cart is a stored shopping cart.
type Cart struct {
	ID       int        `json:"id"`
	Products []LineItem `json:"products"`
}

// NotFound is returned in place of a Cart when a lookup misses.
// It marshals as {"error": "Cart Not Found!", "cartId": <id>}.
type NotFound struct {
	Message string `json:"error"`
	CartID  int    `json:"cartId"`
}

// NewNotFound returns the not-found result for the given cart ID.
func NewNotFound(id int) *NotFound {
	return &NotFound{Message: NotFoundMessage, CartID: id}
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s (cart %d)", e.Message, e.CartID)
}
