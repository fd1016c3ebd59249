// internal/application/checkout_service_test.go
package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSession() *domain.Session {
	return &domain.Session{Token: "token-1", UserID: 7, Username: "tester"}
}

type checkoutFixture struct {
	repo     *ports.MockStoreRepositoryPort
	journal  *ports.MockJournalPort
	events   *ports.MockEventPublisherPort
	notices  *NoticeCenter
	clock    *fakeClock
	checkout *CheckoutService
}

func newCheckoutFixture(t *testing.T) (*checkoutFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	clock := newFakeClock()
	f := &checkoutFixture{
		repo:    ports.NewMockStoreRepositoryPort(ctrl),
		journal: ports.NewMockJournalPort(ctrl),
		events:  ports.NewMockEventPublisherPort(ctrl),
		notices: NewNoticeCenter(clock, time.Minute),
		clock:   clock,
	}
	f.checkout = NewCheckoutService(f.repo, f.journal, f.events, f.notices, clock)
	return f, ctrl
}

func (f *checkoutFixture) lastNotice(t *testing.T, userID int64) domain.Notice {
	t.Helper()
	active := f.notices.Active(userID)
	if len(active) == 0 {
		t.Fatal("no active notices")
	}
	return active[len(active)-1]
}

func TestCheckout_Success(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("50.25"), Quantity: 3})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: dec("50.25"), StockQuantity: 5}
	method := &domain.PaymentMethod{ID: 4, DocumentID: "doc-c1", CardNumber: "4111", CVV: "123", Balance: dec("200")}

	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), "token-1", "4111", "123").Return(method, nil)
	f.repo.EXPECT().UpdatePaymentMethodBalance(gomock.Any(), "token-1", "doc-c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, balance decimal.Decimal) error {
			if !balance.Equal(dec("49.25")) {
				t.Errorf("new balance = %s, want 49.25", balance)
			}
			return nil
		})
	f.repo.EXPECT().CreateOrder(gomock.Any(), "token-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, order *domain.Order) (*domain.Order, error) {
			if order.Status != "Pending" {
				t.Errorf("order status = %q, want Pending", order.Status)
			}
			if !order.TotalAmount.Equal(dec("150.75")) {
				t.Errorf("order total = %s, want 150.75", order.TotalAmount)
			}
			if order.Address == nil || order.Address.ID != 11 {
				t.Errorf("order address = %v, want id 11", order.Address)
			}
			created := *order
			created.ID = 42
			return &created, nil
		})
	f.repo.EXPECT().CreateOrderItem(gomock.Any(), "token-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item *domain.OrderItem) (*domain.OrderItem, error) {
			if item.OrderID != 42 || item.ProductID != 1 || item.Quantity != 3 {
				t.Errorf("order item = %+v, want order 42 product 1 x3", item)
			}
			if !item.UnitPrice.Equal(dec("50.25")) {
				t.Errorf("order item unit price = %s, want 50.25", item.UnitPrice)
			}
			return item, nil
		})
	f.repo.EXPECT().UpdateProductStock(gomock.Any(), "token-1", "doc-p1", int64(2)).Return(nil)
	f.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.events.EXPECT().PublishOrderPlaced(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.OrderPlacedEvent) error {
			if event.OrderID != 42 || event.UserID != 7 || len(event.Lines) != 1 {
				t.Errorf("event = %+v, want order 42 user 7 with one line", event)
			}
			return nil
		})

	result, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "123", AddressID: 11,
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error: %v", err)
	}
	if result.Order.ID != 42 {
		t.Errorf("result order id = %d, want 42", result.Order.ID)
	}
	if result.RedirectAfter != 2*time.Second {
		t.Errorf("redirect after = %s, want 2s", result.RedirectAfter)
	}
	if cart.Len() != 0 {
		t.Errorf("cart not cleared after success")
	}
	if notice := f.lastNotice(t, 7); notice.Message != "Siparişiniz başarıyla oluşturuldu!" {
		t.Errorf("notice = %q", notice.Message)
	}
}

func TestCheckout_GroupedStockShortfallAbortsBeforeMutation(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	// Two adds of the same product must be validated as their sum.
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("10"), Quantity: 3})
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("10"), Quantity: 4})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", StockQuantity: 5}
	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "123", AddressID: 11,
	})
	var shortfall *StockShortfallError
	if !errors.As(err, &shortfall) {
		t.Fatalf("Checkout() error = %v, want StockShortfallError", err)
	}
	want := "Stok yetersiz! Kavun (Sepetteki: 7, Stok: 5)"
	if shortfall.Error() != want {
		t.Errorf("error = %q, want %q", shortfall.Error(), want)
	}
	if cart.Len() != 2 {
		t.Errorf("cart mutated on abort")
	}
	if notice := f.lastNotice(t, 7); notice.Message != want {
		t.Errorf("notice = %q, want %q", notice.Message, want)
	}
}

func TestCheckout_MissingSelection(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("10"), Quantity: 1})

	// Stock validation runs before the selection check.
	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", StockQuantity: 5}
	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{AddressID: 11})
	if !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("Checkout() error = %v, want ErrMissingSelection", err)
	}
	if notice := f.lastNotice(t, 7); notice.Message != "Lütfen kart ve adres seçimi yapınız." {
		t.Errorf("notice = %q", notice.Message)
	}
}

func TestCheckout_InvalidCard(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("10"), Quantity: 1})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", StockQuantity: 5}
	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), "token-1", "4111", "999").Return(nil, nil)

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "999", AddressID: 11,
	})
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("Checkout() error = %v, want ErrInvalidCard", err)
	}
	if notice := f.lastNotice(t, 7); notice.Message != "Geçersiz kart bilgileri!" {
		t.Errorf("notice = %q", notice.Message)
	}
}

func TestCheckout_InsufficientBalanceAbortsBeforeDeduction(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("100.01"), Quantity: 1})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", StockQuantity: 5}
	method := &domain.PaymentMethod{DocumentID: "doc-c1", Balance: dec("100")}
	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), "token-1", "4111", "123").Return(method, nil)

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "123", AddressID: 11,
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Checkout() error = %v, want ErrInsufficientBalance", err)
	}
	if cart.Len() != 1 {
		t.Errorf("cart mutated on abort")
	}
	if notice := f.lastNotice(t, 7); notice.Message != "Kart bakiyesi yetersiz!" {
		t.Errorf("notice = %q", notice.Message)
	}
}

func TestCheckout_ExactBalanceSucceeds(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("33.33"), Quantity: 3})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", Price: dec("33.33"), StockQuantity: 3}
	method := &domain.PaymentMethod{DocumentID: "doc-c1", Balance: dec("99.99")}

	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), "token-1", "4111", "123").Return(method, nil)
	f.repo.EXPECT().UpdatePaymentMethodBalance(gomock.Any(), "token-1", "doc-c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, balance decimal.Decimal) error {
			if !balance.IsZero() {
				t.Errorf("new balance = %s, want 0", balance)
			}
			return nil
		})
	f.repo.EXPECT().CreateOrder(gomock.Any(), "token-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, order *domain.Order) (*domain.Order, error) {
			created := *order
			created.ID = 43
			return &created, nil
		})
	f.repo.EXPECT().CreateOrderItem(gomock.Any(), "token-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, item *domain.OrderItem) (*domain.OrderItem, error) {
			return item, nil
		})
	f.repo.EXPECT().UpdateProductStock(gomock.Any(), "token-1", "doc-p1", int64(0)).Return(nil)
	f.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.events.EXPECT().PublishOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "123", AddressID: 11,
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error: %v", err)
	}
}

func TestCheckout_OrderFailureAfterDeductionIsJournaled(t *testing.T) {
	f, ctrl := newCheckoutFixture(t)
	defer ctrl.Finish()

	sess := testSession()
	cart := domain.NewCart()
	cart.Add(domain.CartItem{ProductID: 1, ProductName: "Kavun", Price: dec("10"), Quantity: 1})

	product := &domain.Product{ID: 1, DocumentID: "doc-p1", Name: "Kavun", StockQuantity: 5}
	method := &domain.PaymentMethod{DocumentID: "doc-c1", Balance: dec("100")}

	f.repo.EXPECT().GetProduct(gomock.Any(), "token-1", int64(1)).Return(product, nil)
	f.repo.EXPECT().FindPaymentMethodByCard(gomock.Any(), "token-1", "4111", "123").Return(method, nil)
	f.repo.EXPECT().UpdatePaymentMethodBalance(gomock.Any(), "token-1", "doc-c1", gomock.Any()).Return(nil)
	f.repo.EXPECT().CreateOrder(gomock.Any(), "token-1", gomock.Any()).Return(nil, errors.New("store unavailable"))

	var recorded []domain.JournalEntry
	f.journal.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.JournalEntry) error {
			recorded = append(recorded, entry)
			return nil
		}).AnyTimes()

	_, err := f.checkout.Checkout(context.Background(), sess, cart, CheckoutInput{
		CardNumber: "4111", CVV: "123", AddressID: 11,
	})
	if err == nil {
		t.Fatal("Checkout() expected error")
	}
	if cart.Len() != 1 {
		t.Errorf("cart mutated on abort")
	}

	// The journal must show the deduction landing and the order failing, all
	// under one checkout id.
	if len(recorded) != 2 {
		t.Fatalf("journal has %d entries, want 2", len(recorded))
	}
	if recorded[0].Step != "deduct_balance" || recorded[0].Status != domain.JournalStatusOK {
		t.Errorf("first entry = %+v, want deduct_balance ok", recorded[0])
	}
	if recorded[1].Step != "create_order" || recorded[1].Status != domain.JournalStatusFailed {
		t.Errorf("second entry = %+v, want create_order failed", recorded[1])
	}
	if recorded[0].CheckoutID == "" || recorded[0].CheckoutID != recorded[1].CheckoutID {
		t.Errorf("entries not linked by checkout id: %q vs %q", recorded[0].CheckoutID, recorded[1].CheckoutID)
	}
}
