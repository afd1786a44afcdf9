package storage

import "fmt"

// PersistenceError indicates a new cart could not be written to disk.
// The file may or may not have been replaced; there is no rollback.
type PersistenceError struct {
	Op   string // the operation that failed, e.g. "create cart"
	Path string // the store file
	Err  error  // the underlying I/O failure
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: failed to persist carts to %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// MutationError indicates an updated collection could not be written
// while adding a product to a cart.
type MutationError struct {
	CartID    int
	ProductID int
	Path      string
	Err       error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("add product %d to cart %d: failed to persist carts to %s: %v",
		e.ProductID, e.CartID, e.Path, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
