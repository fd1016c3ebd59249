// internal/application/cart_service.go
package application

import (
	"context"
	"fmt"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// CartService mutates a session's cart. Adding re-reads stock so the cart
// can never request more of a product than the store currently holds.
type CartService struct {
	repo    ports.StoreRepositoryPort
	notices *NoticeCenter
}

func NewCartService(repo ports.StoreRepositoryPort, notices *NoticeCenter) *CartService {
	return &CartService{repo: repo, notices: notices}
}

// AddProduct validates requested quantity against current stock plus what is
// already in the cart, then merges the line in. Name and unit price are
// snapshotted at add time.
func (s *CartService) AddProduct(ctx context.Context, sess *domain.Session, cart *domain.Cart, productID, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.repo.GetProduct(ctx, sess.Token, productID)
	if err != nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Ürün sepete eklenirken bir hata oluştu.")
		return err
	}
	if product == nil {
		s.notices.Push(sess.UserID, domain.NoticeError, "Ürün sepete eklenirken bir hata oluştu.")
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	inCart := cart.Quantity(productID)
	if inCart+quantity > product.StockQuantity {
		s.notices.Push(sess.UserID, domain.NoticeError,
			fmt.Sprintf("Stok yetersiz! (Mevcut: %d, Sepette: %d)", product.StockQuantity, inCart))
		return &StockShortfallError{ProductName: product.Name, InCart: inCart + quantity, Stock: product.StockQuantity}
	}

	cart.Add(domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
	})
	s.notices.Push(sess.UserID, domain.NoticeSuccess,
		fmt.Sprintf("%d adet %s sepete eklendi.", quantity, product.Name))
	return nil
}

// Remove drops every cart line for the product.
func (s *CartService) Remove(cart *domain.Cart, productID int64) {
	cart.Remove(productID)
}
