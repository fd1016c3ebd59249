// internal/domain/events.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after a successful checkout so downstream
// consumers (fulfillment, reporting) can react without polling the store.
type OrderPlacedEvent struct {
	CheckoutID  string           `json:"checkout_id"`
	OrderID     int64            `json:"order_id"`
	UserID      int64            `json:"user_id"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Lines       []OrderEventLine `json:"lines"`
	PlacedAt    time.Time        `json:"placed_at"`
}

type OrderEventLine struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// JournalEntry records one mutating checkout step for manual reconciliation.
// The flow has no compensation, so the journal is the only trace of a
// partial failure (balance deducted, order missing).
type JournalEntry struct {
	CheckoutID string
	UserID     int64
	Step       string
	Status     string
	Detail     string
	OrderID    int64
	CreatedAt  time.Time
}

const (
	JournalStatusOK     = "ok"
	JournalStatusFailed = "failed"
)
