package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/maintstock/internal/inventory"
)

// Store is the catalog surface the engine needs. *inventory.Catalog
// satisfies it.
type Store interface {
	Get(id string) (inventory.Item, error)
	List() []inventory.Item
	ApplyDelta(id string, signedAmount int, now time.Time) (inventory.Item, error)
}

// Engine applies stock movements to a Store and keeps the append-only
// history of accepted movements.
type Engine struct {
	store Store
	log   *zap.Logger
	newID func() string
	mu    sync.Mutex
	hist  []Transaction // oldest first; History reverses
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithIDGenerator replaces the default UUID v4 ids.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   zap.NewNop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordTransaction validates and applies one movement. Either the item's
// stock, its LastUpdated and the history all change, or none of them do.
func (e *Engine) RecordTransaction(itemID string, typ Type, amount int, now time.Time) (Transaction, error) {
	if amount <= 0 {
		e.reject(itemID, typ, amount, ErrInvalidQuantity)
		return Transaction{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, amount)
	}
	if !typ.valid() {
		e.reject(itemID, typ, amount, ErrInvalidType)
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.store.Get(itemID)
	if err != nil {
		e.reject(itemID, typ, amount, err)
		return Transaction{}, err
	}
	updated, err := e.store.ApplyDelta(itemID, typ.sign(amount), now)
	if err != nil {
		e.reject(itemID, typ, amount, err)
		return Transaction{}, err
	}

	tx := Transaction{
		ID:        e.newID(),
		ItemID:    item.ID,
		ItemName:  item.Name,
		Type:      typ,
		Amount:    amount,
		Timestamp: now,
	}
	e.hist = append(e.hist, tx)

	e.log.Info("stock movement recorded",
		zap.String("tx_id", tx.ID),
		zap.String("item_id", tx.ItemID),
		zap.String("type", string(tx.Type)),
		zap.Int("amount", tx.Amount),
		zap.Int("stock", updated.Stock),
		zap.Bool("reorder", ReorderStatus(updated)),
	)
	return tx, nil
}

func (e *Engine) reject(itemID string, typ Type, amount int, err error) {
	level := e.log.Warn
	if errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrInvalidType) {
		level = e.log.Debug
	}
	level("stock movement rejected",
		zap.String("item_id", itemID),
		zap.String("type", string(typ)),
		zap.Int("amount", amount),
		zap.Error(err),
	)
}

// History returns a copy of every accepted movement, most recent first.
func (e *Engine) History() []Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Transaction, len(e.hist))
	for i, tx := range e.hist {
		out[len(e.hist)-1-i] = tx
	}
	return out
}

// Items lists the catalog through the engine's lock so a caller never sees
// a stock change without its history record.
func (e *Engine) Items() []inventory.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.List()
}

// Statistics computes the dashboard counters from a consistent snapshot.
func (e *Engine) Statistics(asOf time.Time) Statistics {
	e.mu.Lock()
	items := e.store.List()
	hist := make([]Transaction, len(e.hist))
	copy(hist, e.hist)
	e.mu.Unlock()
	return ComputeStatistics(items, hist, asOf)
}

// ReorderStatus reports whether item is at or below its threshold.
func ReorderStatus(item inventory.Item) bool {
	return item.NeedsReorder()
}
