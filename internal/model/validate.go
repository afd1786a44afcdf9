package model

import "fmt"

// ValidationErrorType represents the type of integrity issue.
type ValidationErrorType string

const (
	ValidationErrorDuplicateID      ValidationErrorType = "duplicate_id"
	ValidationErrorInvalidID        ValidationErrorType = "invalid_id"
	ValidationErrorDuplicateProduct ValidationErrorType = "duplicate_product"
	ValidationErrorInvalidQuantity  ValidationErrorType = "invalid_quantity"
)

// ValidationError represents a data integrity issue in a stored collection.
type ValidationError struct {
	Type    ValidationErrorType
	CartID  int
	Product int // zero for cart-level issues
	Message string
}

func (e ValidationError) Error() string {
	if e.Product != 0 {
		return fmt.Sprintf("cart %d product %d: %s - %s", e.CartID, e.Product, e.Type, e.Message)
	}
	return fmt.Sprintf("cart %d: %s - %s", e.CartID, e.Type, e.Message)
}

// Validate checks a collection for violations of the cart invariants.
// Issues are reported in collection order. The input is not modified.
func Validate(carts []Cart) []ValidationError {
	var errs []ValidationError

	seenIDs := make(map[int]bool)
	for _, c := range carts {
		if c.ID < 1 {
			errs = append(errs, ValidationError{
				Type:    ValidationErrorInvalidID,
				CartID:  c.ID,
				Message: "cart ID must be at least 1",
			})
		}
		if seenIDs[c.ID] {
			errs = append(errs, ValidationError{
				Type:    ValidationErrorDuplicateID,
				CartID:  c.ID,
				Message: "duplicate cart ID",
			})
		}
		seenIDs[c.ID] = true

		seenProducts := make(map[int]bool)
		for _, li := range c.Products {
			if seenProducts[li.Product] {
				errs = append(errs, ValidationError{
					Type:    ValidationErrorDuplicateProduct,
					CartID:  c.ID,
					Product: li.Product,
					Message: "product appears in more than one line item",
				})
			}
			seenProducts[li.Product] = true

			if li.Quantity < 1 {
				errs = append(errs, ValidationError{
					Type:    ValidationErrorInvalidQuantity,
					CartID:  c.ID,
					Product: li.Product,
					Message: fmt.Sprintf("quantity %d must be at least 1", li.Quantity),
				})
			}
		}
	}

	return errs
}
