// internal/domain/cart.go
package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CartItem is an ephemeral (product, quantity) pairing. Price is the unit
// price snapshotted at add-to-cart time and is not re-validated later.
type CartItem struct {
	ProductID   int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int64
}

// Cart tracks items a user intends to purchase before checkout. It is owned
// by the session and never persisted; a new session starts empty. Requests
// from one session can run concurrently, so every method holds the lock.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges by product id, summing quantities. The price snapshot of the
// first add wins for an existing line.
func (c *Cart) Add(item CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove drops every entry matching the product id.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Quantity reports how many units of a product are already in the cart.
func (c *Cart) Quantity(productID int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, item := range c.items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}

// Total is the exact decimal sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// Group sums requested quantities by product id, preserving first-seen order.
// Checkout validates stock against the grouped view.
func (c *Cart) Group() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	var grouped []CartItem
	index := make(map[int64]int)
	for _, item := range c.items {
		if i, ok := index[item.ProductID]; ok {
			grouped[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(grouped)
		grouped = append(grouped, item)
	}
	return grouped
}
