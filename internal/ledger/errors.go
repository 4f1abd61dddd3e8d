package ledger

import (
	"errors"

	"github.com/jask/maintstock/internal/inventory"
)

var (
	// ErrInvalidType is returned for a direction other than IN or OUT.
	ErrInvalidType = errors.New("transaction type must be IN or OUT")

	// Re-exported so callers of the ledger need not import inventory to
	// classify a rejection.
	ErrItemNotFound    = inventory.ErrItemNotFound
	ErrNegativeStock   = inventory.ErrNegativeStock
	ErrInvalidQuantity = inventory.ErrInvalidQuantity
)
