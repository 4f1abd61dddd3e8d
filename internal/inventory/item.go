package inventory

import (
	"fmt"
	"strings"
	"time"
)

// Category groups parts by maintenance trade.
type Category string

const (
	CategoryMechanic Category = "Mechanic"
	CategoryElectric Category = "Electric"
	CategoryTools    Category = "Tools"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryMechanic, CategoryElectric, CategoryTools}
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Item is the current state of one stocked part.
type Item struct {
	ID          string
	Name        string
	Category    Category
	Stock       int
	MinStock    int
	Unit        string
	LastUpdated time.Time // zero until the first accepted transaction
}

// NeedsReorder reports whether stock has fallen to or below the threshold.
func (i Item) NeedsReorder() bool {
	return i.Stock <= i.MinStock
}

func (i Item) validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrMissingID
	}
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return fmt.Errorf("item %s: %w", i.ID, err)
	}
	if i.Stock < 0 {
		return fmt.Errorf("item %s: %w", i.ID, ErrNegativeStock)
	}
	if i.MinStock < 0 {
		return fmt.Errorf("item %s: %w", i.ID, ErrNegativeThreshold)
	}
	return nil
}
