package ledger

import (
	"time"

	"github.com/jask/maintstock/internal/inventory"
)

// Statistics are the dashboard counters.
type Statistics struct {
	TotalSKU              int
	ReorderCount          int
	TodayTransactionCount int
}

// ComputeStatistics derives the counters from scratch. A transaction counts
// as "today" when its calendar date, read in asOf's location, equals asOf's.
func ComputeStatistics(items []inventory.Item, transactions []Transaction, asOf time.Time) Statistics {
	s := Statistics{TotalSKU: len(items)}
	for _, it := range items {
		if ReorderStatus(it) {
			s.ReorderCount++
		}
	}
	for _, tx := range transactions {
		if sameDay(tx.Timestamp, asOf) {
			s.TodayTransactionCount++
		}
	}
	return s
}

func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
