// internal/application/account_service.go
package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// New cards start with this stored-value balance.
var defaultCardBalance = decimal.NewFromInt(10000)

// AccountService is plain CRUD over the user's addresses, saved cards and
// order history.
type AccountService struct {
	repo ports.StoreRepositoryPort
}

func NewAccountService(repo ports.StoreRepositoryPort) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) ListAddresses(ctx context.Context, sess *domain.Session) ([]domain.Address, error) {
	return s.repo.ListAddresses(ctx, sess.Token, sess.UserID)
}

// SaveAddress creates the address, or updates it when DocumentID is set.
func (s *AccountService) SaveAddress(ctx context.Context, sess *domain.Session, address *domain.Address) (*domain.Address, error) {
	if address.Title == "" || address.Country == "" || address.City == "" ||
		address.District == "" || address.Street == "" || address.PostalCode == "" {
		return nil, errors.New("all address fields are required")
	}
	address.UserID = sess.UserID
	if address.DocumentID != "" {
		if err := s.repo.UpdateAddress(ctx, sess.Token, address); err != nil {
			return nil, err
		}
		return address, nil
	}
	return s.repo.CreateAddress(ctx, sess.Token, address)
}

func (s *AccountService) DeleteAddress(ctx context.Context, sess *domain.Session, documentID string) error {
	return s.repo.DeleteAddress(ctx, sess.Token, documentID)
}

func (s *AccountService) ListPaymentMethods(ctx context.Context, sess *domain.Session) ([]domain.PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx, sess.Token, sess.UserID)
}

// AddPaymentMethod stores a card. A zero balance gets the default
// stored-value amount.
func (s *AccountService) AddPaymentMethod(ctx context.Context, sess *domain.Session, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if method.HolderName == "" || method.CardNumber == "" || method.CVV == "" ||
		method.ExpiryMonth == "" || method.ExpiryYear == "" {
		return nil, errors.New("all card fields are required")
	}
	method.UserID = sess.UserID
	if method.Balance.IsZero() {
		method.Balance = defaultCardBalance
	}
	return s.repo.CreatePaymentMethod(ctx, sess.Token, method)
}

func (s *AccountService) DeletePaymentMethod(ctx context.Context, sess *domain.Session, documentID string) error {
	return s.repo.DeletePaymentMethod(ctx, sess.Token, documentID)
}

func (s *AccountService) ListOrders(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, sess.Token, sess.UserID)
}
