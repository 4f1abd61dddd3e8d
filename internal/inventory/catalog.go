package inventory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
)

// Catalog owns the current record of every item. ApplyDelta is the only
// way stock changes after construction.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]*Item
	order []string
}

// NewCatalog seeds a catalog, keeping the order items were given in.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make(map[string]*Item, len(items)),
		order: make([]string, 0, len(items)),
	}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.items[it.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		rec := it
		c.items[it.ID] = &rec
		c.order = append(c.order, it.ID)
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return *it, nil
}

// List returns copies of all items in load order.
func (c *Catalog) List() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// ApplyDelta adds signedAmount to the item's stock and stamps LastUpdated.
// The record is left untouched if the result would be negative.
func (c *Catalog) ApplyDelta(id string, signedAmount int, now time.Time) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	next := it.Stock + signedAmount
	if signedAmount > 0 && next < it.Stock {
		return Item{}, fmt.Errorf("%w: %s has %d %s, change of %d overflows", ErrInvalidQuantity, id, it.Stock, it.Unit, signedAmount)
	}
	if next < 0 {
		return Item{}, fmt.Errorf("%w: %s has %d %s, change of %d", ErrNegativeStock, id, it.Stock, it.Unit, signedAmount)
	}
	it.Stock = next
	it.LastUpdated = now
	return *it, nil
}

// Suggest returns the item whose id or name is closest to query by edit
// distance. Matches further than half the query length away are dropped.
func (c *Catalog) Suggest(query string) (Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Item{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	best, bestDist := "", -1
	for _, id := range c.order {
		it := c.items[id]
		d := levenshtein.ComputeDistance(q, strings.ToLower(it.ID))
		candidates := append([]string{it.Name}, strings.Fields(it.Name)...)
		for _, s := range candidates {
			if nd := levenshtein.ComputeDistance(q, strings.ToLower(s)); nd < d {
				d = nd
			}
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = id, d
		}
	}
	if bestDist < 0 || bestDist*2 > len(q) {
		return Item{}, false
	}
	return *c.items[best], true
}
