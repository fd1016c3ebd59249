// internal/adapters/httpapi/server.go
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egokay/storefront.git/internal/application"
	"github.com/egokay/storefront.git/internal/domain"
)

// journalReader exposes the checkout journal trail for the ops endpoint.
type journalReader interface {
	ListByCheckout(ctx context.Context, checkoutID string) ([]domain.JournalEntry, error)
}

// Server wires the application services into a gin router.
type Server struct {
	sessions  *application.SessionService
	catalog   *application.CatalogService
	cart      *application.CartService
	checkout  *application.CheckoutService
	favorites *application.FavoritesService
	account   *application.AccountService
	notices   *application.NoticeCenter
	journal   journalReader
}

type Services struct {
	Sessions  *application.SessionService
	Catalog   *application.CatalogService
	Cart      *application.CartService
	Checkout  *application.CheckoutService
	Favorites *application.FavoritesService
	Account   *application.AccountService
	Notices   *application.NoticeCenter
	Journal   journalReader
}

func NewServer(services Services) *Server {
	return &Server{
		sessions:  services.Sessions,
		catalog:   services.Catalog,
		cart:      services.Cart,
		checkout:  services.Checkout,
		favorites: services.Favorites,
		account:   services.Account,
		notices:   services.Notices,
		journal:   services.Journal,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.POST("/auth/register", s.handleRegister)
	router.POST("/auth/login", s.handleLogin)

	authed := router.Group("/", s.requireSession())
	{
		authed.POST("/auth/logout", s.handleLogout)
		authed.GET("/me", s.handleMe)

		authed.GET("/products", s.handleListProducts)
		authed.GET("/products/:id", s.handleGetProduct)
		authed.POST("/products/:id/quantity", s.handleSelectQuantity)
		authed.GET("/categories", s.handleListCategories)
		authed.GET("/campaigns", s.handleListCampaigns)
		authed.GET("/campaigns/:documentId", s.handleGetCampaign)

		authed.GET("/cart", s.handleGetCart)
		authed.POST("/cart/items", s.handleAddCartItem)
		authed.DELETE("/cart/items/:productId", s.handleRemoveCartItem)
		authed.POST("/checkout", s.handleCheckout)

		authed.GET("/favorites", s.handleListFavorites)
		authed.POST("/favorites/toggle", s.handleToggleFavorite)
		authed.DELETE("/favorites/:documentId", s.handleRemoveFavorite)

		authed.GET("/addresses", s.handleListAddresses)
		authed.POST("/addresses", s.handleSaveAddress)
		authed.DELETE("/addresses/:documentId", s.handleDeleteAddress)

		authed.GET("/payment-methods", s.handleListPaymentMethods)
		authed.POST("/payment-methods", s.handleAddPaymentMethod)
		authed.DELETE("/payment-methods/:documentId", s.handleDeletePaymentMethod)

		authed.GET("/orders", s.handleListOrders)

		authed.GET("/notices", s.handleListNotices)
		authed.DELETE("/notices/:id", s.handleDismissNotice)

		authed.GET("/ops/journal/:checkoutId", s.handleJournalTrail)
	}

	return router
}
