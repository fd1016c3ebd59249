// internal/ports/ports.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
)

// AuthPort wraps the remote store's credential endpoints. The returned token
// is the bearer used for every subsequent repository call.
type AuthPort interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

// StoreRepositoryPort is the capability interface over the remote data
// service's collections. Implementations receive the session token
// explicitly; nothing reads ambient credential state.
type StoreRepositoryPort interface {
	// Products. categoryID 0 lists everything.
	ListProducts(ctx context.Context, token string, categoryID int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, token string, id int64) (*domain.Product, error)
	FindProductByName(ctx context.Context, token, name string) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token string, product *domain.Product) error
	UpdateProductStock(ctx context.Context, token, documentID string, stock int64) error

	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	FindCategoryByName(ctx context.Context, token, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, token, name string) (*domain.Category, error)

	ListCampaigns(ctx context.Context, token string) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, token, documentID string) (*domain.Campaign, error)

	ListFavorites(ctx context.Context, token string, userID int64) ([]domain.Favorite, error)
	FindFavorite(ctx context.Context, token string, userID, productID int64) (*domain.Favorite, error)
	CreateFavorite(ctx context.Context, token string, userID, productID int64) (*domain.Favorite, error)
	DeleteFavorite(ctx context.Context, token, documentID string) error

	ListAddresses(ctx context.Context, token string, userID int64) ([]domain.Address, error)
	CreateAddress(ctx context.Context, token string, address *domain.Address) (*domain.Address, error)
	UpdateAddress(ctx context.Context, token string, address *domain.Address) error
	DeleteAddress(ctx context.Context, token, documentID string) error

	ListPaymentMethods(ctx context.Context, token string, userID int64) ([]domain.PaymentMethod, error)
	FindPaymentMethodByCard(ctx context.Context, token, cardNumber, cvv string) (*domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, token string, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	UpdatePaymentMethodBalance(ctx context.Context, token, documentID string, balance decimal.Decimal) error
	DeletePaymentMethod(ctx context.Context, token, documentID string) error

	ListOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error)
	CreateOrder(ctx context.Context, token string, order *domain.Order) (*domain.Order, error)
	CreateOrderItem(ctx context.Context, token string, item *domain.OrderItem) (*domain.OrderItem, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

// JournalPort persists checkout step records for manual reconciliation.
type JournalPort interface {
	Record(ctx context.Context, entry domain.JournalEntry) error
}

// EventPublisherPort emits order-placed events after successful checkouts.
type EventPublisherPort interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

// Clock abstracts time for notice scheduling and journal timestamps.
type Clock interface {
	Now() time.Time
}
