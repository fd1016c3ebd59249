// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// PostgresJournal persists checkout step records. The checkout flow has no
// compensation, so after a partial failure this table is what operators read
// to reconcile balances and stock by hand.
type PostgresJournal struct {
	db *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

var _ ports.JournalPort = (*PostgresJournal)(nil)

func (j *PostgresJournal) Record(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO checkout_journal (checkout_id, user_id, step, status, detail, order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var orderID sql.NullInt64
	if entry.OrderID != 0 {
		orderID = sql.NullInt64{Int64: entry.OrderID, Valid: true}
	}
	_, err := j.db.ExecContext(ctx, query,
		entry.CheckoutID, entry.UserID, entry.Step, entry.Status, entry.Detail, orderID, entry.CreatedAt,
	)
	return err
}

// ListByCheckout returns a checkout's journal trail in insertion order.
func (j *PostgresJournal) ListByCheckout(ctx context.Context, checkoutID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT checkout_id, user_id, step, status, detail, order_id, created_at
		FROM checkout_journal WHERE checkout_id = $1 ORDER BY id
	`
	rows, err := j.db.QueryContext(ctx, query, checkoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var orderID sql.NullInt64
		if err := rows.Scan(&e.CheckoutID, &e.UserID, &e.Step, &e.Status, &e.Detail, &orderID, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.OrderID = orderID.Int64
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// InitSchema creates the journal table if it does not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS checkout_journal (
			id SERIAL PRIMARY KEY,
			checkout_id TEXT NOT NULL,
			user_id BIGINT NOT NULL,
			step TEXT NOT NULL,
			status TEXT NOT NULL,
			detail TEXT,
			order_id BIGINT,
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := db.ExecContext(ctx, query)
	return err
}
