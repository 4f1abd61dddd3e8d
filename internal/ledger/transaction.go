package ledger

import "time"

// Type is the direction of a stock movement.
type Type string

const (
	TypeIn  Type = "IN"
	TypeOut Type = "OUT"
)

func (t Type) valid() bool { return t == TypeIn || t == TypeOut }

// sign maps the direction onto the catalog delta.
func (t Type) sign(amount int) int {
	if t == TypeOut {
		return -amount
	}
	return amount
}

// Transaction is one accepted stock movement. ItemName is captured when the
// movement is recorded and is never re-resolved.
type Transaction struct {
	ID        string
	ItemID    string
	ItemName  string
	Type      Type
	Amount    int
	Timestamp time.Time
}
