// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int64
	Username string
	Email    string
}

// Session carries the bearer token issued by the remote store together with
// the identity derived from it. Every repository call receives it explicitly.
type Session struct {
	Token     string
	UserID    int64
	Username  string
	CreatedAt time.Time
}

type Product struct {
	ID            int64
	DocumentID    string
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	Description   string
	Category      *Category
	ImageURLs     []string
}

type Category struct {
	ID         int64
	DocumentID string
	Name       string
}

type Campaign struct {
	ID          int64
	DocumentID  string
	ImageURL    string
	Description string
}

type Favorite struct {
	ID         int64
	DocumentID string
	UserID     int64
	Product    *Product
}

type Address struct {
	ID         int64
	DocumentID string
	Title      string
	Country    string
	City       string
	District   string
	Street     string
	PostalCode string
	UserID     int64
}

// PaymentMethod is a stored-value card: Balance (unit_price on the wire) is
// debited directly at checkout instead of going through a real processor.
type PaymentMethod struct {
	ID          int64
	DocumentID  string
	HolderName  string
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
	Balance     decimal.Decimal
	UserID      int64
}

type Order struct {
	ID          int64
	DocumentID  string
	Status      string
	TotalAmount decimal.Decimal
	UserID      int64
	Address     *Address
	Items       []OrderItem
	CreatedAt   time.Time
}

type OrderItem struct {
	ID         int64
	DocumentID string
	OrderID    int64
	ProductID  int64
	Quantity   int64
	UnitPrice  decimal.Decimal
}
