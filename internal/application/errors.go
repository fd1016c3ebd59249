// internal/application/errors.go
package application

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingSelection    = errors.New("card and address selection required")
	ErrInvalidCard         = errors.New("payment method not found")
	ErrInsufficientBalance = errors.New("insufficient card balance")
	ErrNotFound            = errors.New("not found")
	ErrSessionExpired      = errors.New("session expired")
)

// StockShortfallError names the offending product and the shortfall. Its
// message doubles as the user-visible notice text.
type StockShortfallError struct {
	ProductName string
	InCart      int64
	Stock       int64
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("Stok yetersiz! %s (Sepetteki: %d, Stok: %d)", e.ProductName, e.InCart, e.Stock)
}
