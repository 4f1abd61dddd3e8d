package ledger

import (
	"fmt"
	"strings"

	"github.com/jask/maintstock/internal/inventory"
)

// FilterStatus narrows the item list by reorder state.
type FilterStatus string

const (
	FilterAll         FilterStatus = "ALL"
	FilterReorderOnly FilterStatus = "REORDER_ONLY"
)

func ParseFilterStatus(s string) (FilterStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "reorder", "reorder_only", "reorder-only":
		return FilterReorderOnly, nil
	}
	return "", fmt.Errorf("unknown filter status %q", s)
}

// Next cycles between the two statuses for toggle controls.
func (f FilterStatus) Next() FilterStatus {
	if f == FilterReorderOnly {
		return FilterAll
	}
	return FilterReorderOnly
}

// FilterItems keeps items whose name or id contains query (case-insensitive)
// and, for FilterReorderOnly, that need reordering. Input order is kept and
// items is not modified.
func FilterItems(items []inventory.Item, query string, status FilterStatus) []inventory.Item {
	q := strings.ToLower(query)
	out := make([]inventory.Item, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it, q) {
			continue
		}
		if status == FilterReorderOnly && !ReorderStatus(it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it inventory.Item, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.ID), q)
}
