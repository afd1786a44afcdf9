// Package ops implements the cart operations exposed to collaborators.
//
// Identifiers arrive untyped (numbers or integer text from a request) and
// are normalized once here; the store itself deals only in ints.
package ops

import (
	"fmt"

	"github.com/jacksmith/carts/internal/logger"
	"github.com/jacksmith/carts/internal/model"
	"github.com/jacksmith/carts/internal/storage"
)

// OpenStore loads the YAML config at configPath (defaults if absent) and
// returns a Store with a logger at the configured level.
func OpenStore(configPath string) (*storage.Store, error) {
	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	return storage.OpenConfig(cfg, log)
}

// CreateCart creates a new empty cart.
func CreateCart(s Store) (model.Cart, error) {
	return s.CreateCart()
}

// ListCarts returns all carts. Never fails; see storage.Store.LoadAll.
func ListCarts(s Store) []model.Cart {
	return s.LoadAll()
}

// GetCart returns the cart identified by rawID.
// Returns *ValidationError if rawID is not a positive integer, and
// *model.NotFound if no such cart exists.
func GetCart(s Store, rawID any) (model.Cart, error) {
	id, err := parseID("cart id", rawID)
	if err != nil {
		return model.Cart{}, err
	}
	return s.GetCartByID(id)
}

// AddProduct adds one unit of a product to a cart and returns the full
// updated collection. An unknown cart leaves the collection unchanged.
// Returns *ValidationError if either identifier is not a positive integer.
func AddProduct(s Store, rawCartID, rawProductID any) ([]model.Cart, error) {
	cartID, err := parseID("cart id", rawCartID)
	if err != nil {
		return nil, err
	}
	productID, err := parseID("product id", rawProductID)
	if err != nil {
		return nil, err
	}
	return s.AddProductToCart(cartID, productID)
}

func parseID(field string, v any) (int, error) {
	id, err := model.ParseID(v)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: v, Err: err}
	}
	return id, nil
}
