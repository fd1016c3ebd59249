// internal/application/checkout_service.go
package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

// Checkout step names as they appear in the journal.
const (
	stepDeductBalance   = "deduct_balance"
	stepCreateOrder     = "create_order"
	stepCreateOrderItem = "create_order_item"
	stepDecrementStock  = "decrement_stock"
)

// After a successful checkout the caller should return to the catalog once
// this delay elapses.
const redirectDelay = 2 * time.Second

type CheckoutInput struct {
	CardNumber string
	CVV        string
	AddressID  int64
}

type CheckoutResult struct {
	Order         *domain.Order
	RedirectAfter time.Duration
}

// CheckoutService runs the checkout state machine: group, validate stock,
// re-fetch the card, deduct balance, create the order and its items,
// decrement stock. The steps are sequential remote calls with no
// transaction; once the balance deduction lands there is no compensation,
// only the journal trail for manual reconciliation.
type CheckoutService struct {
	repo    ports.StoreRepositoryPort
	journal ports.JournalPort
	events  ports.EventPublisherPort
	notices *NoticeCenter
	clock   ports.Clock
}

func NewCheckoutService(repo ports.StoreRepositoryPort, journal ports.JournalPort, events ports.EventPublisherPort, notices *NoticeCenter, clock ports.Clock) *CheckoutService {
	return &CheckoutService{repo: repo, journal: journal, events: events, notices: notices, clock: clock}
}

// Checkout places an order for the cart's contents. On any abort the cart is
// left intact; on success it is cleared.
func (s *CheckoutService) Checkout(ctx context.Context, sess *domain.Session, cart *domain.Cart, input CheckoutInput) (*CheckoutResult, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	// Step 1-2: group by product and validate requested sums against
	// current stock. Nothing has mutated, so an abort here needs no
	// cleanup.
	grouped := cart.Group()
	products := make(map[int64]*domain.Product, len(grouped))
	for _, line := range grouped {
		product, err := s.repo.GetProduct(ctx, sess.Token, line.ProductID)
		if err != nil {
			s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
			return nil, err
		}
		if product == nil {
			s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
			return nil, fmt.Errorf("product %d: %w", line.ProductID, ErrNotFound)
		}
		if line.Quantity > product.StockQuantity {
			shortfall := &StockShortfallError{
				ProductName: product.Name,
				InCart:      line.Quantity,
				Stock:       product.StockQuantity,
			}
			s.fail(sess.UserID, shortfall.Error())
			return nil, shortfall
		}
		products[line.ProductID] = product
	}

	// Step 3: card and address must have been selected.
	if input.CardNumber == "" || input.CVV == "" || input.AddressID == 0 {
		s.fail(sess.UserID, "Lütfen kart ve adres seçimi yapınız.")
		return nil, ErrMissingSelection
	}

	// Step 4: re-fetch the card by number + CVV (not by stored id) for its
	// current balance.
	total := cart.Total()
	method, err := s.repo.FindPaymentMethodByCard(ctx, sess.Token, input.CardNumber, input.CVV)
	if err != nil {
		s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
		return nil, err
	}
	if method == nil {
		s.fail(sess.UserID, "Geçersiz kart bilgileri!")
		return nil, ErrInvalidCard
	}
	if method.Balance.LessThan(total) {
		s.fail(sess.UserID, "Kart bakiyesi yetersiz!")
		return nil, ErrInsufficientBalance
	}

	checkoutID := uuid.NewString()

	// Step 5: deduct balance. First mutation; everything from here on is
	// journaled.
	newBalance := method.Balance.Sub(total)
	if err := s.repo.UpdatePaymentMethodBalance(ctx, sess.Token, method.DocumentID, newBalance); err != nil {
		s.record(ctx, checkoutID, sess.UserID, stepDeductBalance, domain.JournalStatusFailed, err.Error(), 0)
		s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
		return nil, err
	}
	s.record(ctx, checkoutID, sess.UserID, stepDeductBalance, domain.JournalStatusOK,
		fmt.Sprintf("card %s: %s -> %s", method.DocumentID, method.Balance, newBalance), 0)

	// Step 6: create the order.
	order, err := s.repo.CreateOrder(ctx, sess.Token, &domain.Order{
		Status:      "Pending",
		TotalAmount: total,
		UserID:      sess.UserID,
		Address:     &domain.Address{ID: input.AddressID},
	})
	if err != nil {
		// Balance is already deducted; the journal is the only trace.
		s.record(ctx, checkoutID, sess.UserID, stepCreateOrder, domain.JournalStatusFailed, err.Error(), 0)
		s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
		return nil, err
	}
	s.record(ctx, checkoutID, sess.UserID, stepCreateOrder, domain.JournalStatusOK, "", order.ID)

	// Step 7: one order item per cart line, with the add-to-cart unit
	// price snapshot.
	for _, line := range cart.Items() {
		_, err := s.repo.CreateOrderItem(ctx, sess.Token, &domain.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
		if err != nil {
			s.record(ctx, checkoutID, sess.UserID, stepCreateOrderItem, domain.JournalStatusFailed,
				fmt.Sprintf("product %d: %v", line.ProductID, err), order.ID)
			s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
			return nil, err
		}
		s.record(ctx, checkoutID, sess.UserID, stepCreateOrderItem, domain.JournalStatusOK,
			fmt.Sprintf("product %d x%d", line.ProductID, line.Quantity), order.ID)
	}

	// Step 8: decrement stock per distinct product.
	for _, line := range grouped {
		product := products[line.ProductID]
		remaining := product.StockQuantity - line.Quantity
		if err := s.repo.UpdateProductStock(ctx, sess.Token, product.DocumentID, remaining); err != nil {
			s.record(ctx, checkoutID, sess.UserID, stepDecrementStock, domain.JournalStatusFailed,
				fmt.Sprintf("product %d: %v", line.ProductID, err), order.ID)
			s.fail(sess.UserID, "Ödeme işlemi sırasında bir hata oluştu.")
			return nil, err
		}
		s.record(ctx, checkoutID, sess.UserID, stepDecrementStock, domain.JournalStatusOK,
			fmt.Sprintf("product %d: %d -> %d", line.ProductID, product.StockQuantity, remaining), order.ID)
	}

	// Step 9: done. Publish the event best effort, clear the cart, notify.
	s.publish(ctx, checkoutID, sess.UserID, order, cart)
	cart.Clear()
	s.notices.Push(sess.UserID, domain.NoticeSuccess, "Siparişiniz başarıyla oluşturuldu!")

	return &CheckoutResult{Order: order, RedirectAfter: redirectDelay}, nil
}

func (s *CheckoutService) publish(ctx context.Context, checkoutID string, userID int64, order *domain.Order, cart *domain.Cart) {
	if s.events == nil {
		return
	}
	event := domain.OrderPlacedEvent{
		CheckoutID:  checkoutID,
		OrderID:     order.ID,
		UserID:      userID,
		TotalAmount: order.TotalAmount,
		PlacedAt:    s.clock.Now(),
	}
	for _, line := range cart.Items() {
		event.Lines = append(event.Lines, domain.OrderEventLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}
	if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
		log.Printf("failed to publish order placed event for order %d: %v", order.ID, err)
	}
}

func (s *CheckoutService) record(ctx context.Context, checkoutID string, userID int64, step, status, detail string, orderID int64) {
	if s.journal == nil {
		return
	}
	entry := domain.JournalEntry{
		CheckoutID: checkoutID,
		UserID:     userID,
		Step:       step,
		Status:     status,
		Detail:     detail,
		OrderID:    orderID,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.journal.Record(ctx, entry); err != nil {
		log.Printf("failed to journal checkout step %s: %v", step, err)
	}
}

func (s *CheckoutService) fail(userID int64, message string) {
	s.notices.Push(userID, domain.NoticeError, message)
}
