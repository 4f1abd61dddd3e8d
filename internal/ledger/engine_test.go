package ledger

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/maintstock/internal/catalog"
	"github.com/jask/maintstock/internal/inventory"
)

var testNow = time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *inventory.Catalog) {
	t.Helper()
	store, err := inventory.NewCatalog(catalog.Defaults())
	require.NoError(t, err)
	seq := 0
	opts = append([]Option{WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("tx-%03d", seq)
	})}, opts...)
	return New(store, opts...), store
}

func mustGet(t *testing.T, store *inventory.Catalog, id string) inventory.Item {
	t.Helper()
	it, err := store.Get(id)
	require.NoError(t, err)
	return it
}

func TestRecordInboundClearsReorder(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	require.True(t, ReorderStatus(mustGet(t, store, "M-002")))

	tx, err := e.RecordTransaction("M-002", TypeIn, 10, testNow)
	require.NoError(t, err)
	require.Equal(t, Transaction{
		ID:        "tx-001",
		ItemID:    "M-002",
		ItemName:  "V-Belt B-52",
		Type:      TypeIn,
		Amount:    10,
		Timestamp: testNow,
	}, tx)

	it := mustGet(t, store, "M-002")
	require.Equal(t, 15, it.Stock)
	require.Equal(t, testNow, it.LastUpdated)
	require.False(t, ReorderStatus(it))
	require.Equal(t, []Transaction{tx}, e.History())
}

func TestRecordOutboundOverdrawIsRejected(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	_, err := e.RecordTransaction("E-104", TypeOut, 5, testNow)
	require.ErrorIs(t, err, ErrNegativeStock)

	it := mustGet(t, store, "E-104")
	require.Equal(t, 2, it.Stock)
	require.True(t, it.LastUpdated.IsZero())
	require.Empty(t, e.History())
}

func TestRecordOutboundToZero(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	tx, err := e.RecordTransaction("E-104", TypeOut, 2, testNow)
	require.NoError(t, err)
	require.Equal(t, TypeOut, tx.Type)

	it := mustGet(t, store, "E-104")
	require.Equal(t, 0, it.Stock)
	require.True(t, ReorderStatus(it))
	require.Len(t, e.History(), 1)
}

func TestRecordUnknownItem(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	_, err := e.RecordTransaction("X-999", TypeIn, 5, testNow)
	require.ErrorIs(t, err, ErrItemNotFound)
	require.Empty(t, e.History())
}

func TestRecordInvalidQuantity(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)
	before := store.List()

	for _, amount := range []int{0, -3} {
		_, err := e.RecordTransaction("M-001", TypeIn, amount, testNow)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
	// quantity is checked before the item is looked up
	_, err := e.RecordTransaction("X-999", TypeOut, 0, testNow)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	require.Equal(t, before, store.List())
	require.Empty(t, e.History())
}

func TestRecordInboundOverflowIsInvalidQuantity(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	_, err := e.RecordTransaction("M-001", TypeIn, math.MaxInt, testNow)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	require.NotErrorIs(t, err, ErrNegativeStock)

	require.Equal(t, 45, mustGet(t, store, "M-001").Stock)
	require.Empty(t, e.History())
}

func TestRecordInvalidType(t *testing.T) {
	t.Parallel()
	e, _ := newTestEngine(t)

	_, err := e.RecordTransaction("M-001", Type("SIDEWAYS"), 1, testNow)
	require.ErrorIs(t, err, ErrInvalidType)
	require.Empty(t, e.History())
}

func TestHistoryNewestFirstWithNameSnapshots(t *testing.T) {
	t.Parallel()

	store, err := inventory.NewCatalog([]inventory.Item{
		{ID: "A", Name: "Old name", Category: inventory.CategoryTools, Stock: 1, Unit: "pcs"},
	})
	require.NoError(t, err)
	renamed, err := inventory.NewCatalog([]inventory.Item{
		{ID: "A", Name: "New name", Category: inventory.CategoryTools, Stock: 1, Unit: "pcs"},
	})
	require.NoError(t, err)

	s := &swapStore{Store: store}
	e := New(s)

	first, err := e.RecordTransaction("A", TypeIn, 1, testNow)
	require.NoError(t, err)
	s.Store = renamed
	second, err := e.RecordTransaction("A", TypeIn, 2, testNow.Add(time.Second))
	require.NoError(t, err)
	third, err := e.RecordTransaction("A", TypeOut, 1, testNow.Add(2*time.Second))
	require.NoError(t, err)

	hist := e.History()
	require.Equal(t, []Transaction{third, second, first}, hist)
	require.Equal(t, "Old name", hist[2].ItemName)
	require.Equal(t, "New name", hist[0].ItemName)
	require.NotEqual(t, first.ID, second.ID)

	// the returned slice is a copy
	hist[0].Amount = 1000
	require.Equal(t, 1, e.History()[0].Amount)
}

// swapStore lets a test replace the backing catalog between transactions.
type swapStore struct{ Store }

func TestDefaultIDsAreUnique(t *testing.T) {
	t.Parallel()

	store, err := inventory.NewCatalog(catalog.Defaults())
	require.NoError(t, err)
	e := New(store)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tx, err := e.RecordTransaction("M-003", TypeIn, 1, testNow)
		require.NoError(t, err)
		require.NotEmpty(t, tx.ID)
		require.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
}

func TestStockNeverNegativeAcrossMixedSequence(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	ops := []struct {
		id     string
		typ    Type
		amount int
	}{
		{"T-202", TypeOut, 3}, {"T-202", TypeOut, 3}, {"T-202", TypeIn, 1},
		{"T-202", TypeOut, 2}, {"E-102", TypeOut, 4}, {"E-102", TypeOut, 3},
		{"E-102", TypeIn, 7}, {"M-004", TypeOut, 12}, {"M-004", TypeOut, 1},
	}
	accepted := 0
	for _, op := range ops {
		if _, err := e.RecordTransaction(op.id, op.typ, op.amount, testNow); err == nil {
			accepted++
		}
		for _, it := range store.List() {
			require.GreaterOrEqual(t, it.Stock, 0, it.ID)
		}
	}
	require.Len(t, e.History(), accepted)
	require.Equal(t, 0, mustGet(t, store, "T-202").Stock)
	require.Equal(t, 7, mustGet(t, store, "E-102").Stock)
	require.Equal(t, 0, mustGet(t, store, "M-004").Stock)
}

func TestConcurrentTransactionsStayConsistent(t *testing.T) {
	t.Parallel()
	e, store := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = e.RecordTransaction("M-001", TypeOut, 2, testNow)
		}()
		go func() {
			defer wg.Done()
			_, _ = e.RecordTransaction("M-001", TypeIn, 1, testNow)
		}()
	}
	wg.Wait()

	stock := 45
	for _, tx := range e.History() {
		if tx.Type == TypeIn {
			stock += tx.Amount
		} else {
			stock -= tx.Amount
		}
	}
	require.Equal(t, stock, mustGet(t, store, "M-001").Stock)
	require.GreaterOrEqual(t, stock, 0)
}

func TestEngineLogsOutcomes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	e, _ := newTestEngine(t, WithLogger(zap.New(core)))

	_, err := e.RecordTransaction("M-002", TypeIn, 10, testNow)
	require.NoError(t, err)
	_, err = e.RecordTransaction("E-104", TypeOut, 5, testNow)
	require.Error(t, err)

	recorded := logs.FilterMessage("stock movement recorded").All()
	require.Len(t, recorded, 1)
	fields := recorded[0].ContextMap()
	require.Equal(t, "M-002", fields["item_id"])
	require.EqualValues(t, 15, fields["stock"])
	require.Equal(t, false, fields["reorder"])

	rejected := logs.FilterMessage("stock movement rejected").All()
	require.Len(t, rejected, 1)
	require.Equal(t, zapcore.WarnLevel, rejected[0].Level)
}
