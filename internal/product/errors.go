package product

import "errors"

var (
	// ErrNotFound signals that no product exists under the requested id.
	ErrNotFound = errors.New("product not found")

	// ErrDuplicateID is returned by the repository when an insert collides
	// with an existing product id. The usecase retries with a fresh id.
	ErrDuplicateID = errors.New("product id already exists")

	// Messages surface verbatim as 400 response bodies.
	ErrInvalidQuantity   = errors.New("Quantity must be greater than zero.")
	ErrInsufficientStock = errors.New("Insufficient stock available.")
)
