package inventory

import "errors"

var (
	// ErrItemNotFound is returned when an id is not in the catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrNegativeStock is returned when a delta would take stock below zero.
	ErrNegativeStock = errors.New("stock cannot be negative")

	// ErrInvalidQuantity is returned for amounts that are not positive
	// integers or that the stock counter cannot hold.
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")

	ErrNegativeThreshold = errors.New("minimum stock cannot be negative")
	ErrMissingID         = errors.New("item id is required")
	ErrDuplicateID       = errors.New("duplicate item id")
	ErrUnknownCategory   = errors.New("unknown category")
)
