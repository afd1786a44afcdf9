package ops

import (
	"github.com/jacksmith/carts/internal/model"
	"github.com/jacksmith/carts/internal/storage"
)

// Store defines the persistence interface required by cart operations.
// The concrete implementation is storage.Store, but this interface allows
// alternative backends (in-memory, fakes) for testing.
type Store interface {
	Load() storage.LoadResult
	LoadAll() []model.Cart
	CreateCart() (model.Cart, error)
	GetCartByID(id int) (model.Cart, error)
	AddProductToCart(cartID, productID int) ([]model.Cart, error)
}

var _ Store = (*storage.Store)(nil)
