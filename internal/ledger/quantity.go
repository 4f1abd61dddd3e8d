package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseQuantity converts operator input into a movement amount.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidQuantity)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	return n, nil
}
