// internal/adapters/httpapi/cart_handler.go
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/egokay/storefront.git/internal/application"
)

func (s *Server) handleGetCart(c *gin.Context) {
	state := sessionState(c)
	c.JSON(http.StatusOK, toCartResponse(state.Cart))
}

func (s *Server) handleAddCartItem(c *gin.Context) {
	state := sessionState(c)
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		// Fall back to the session's remembered selector value.
		quantity = state.Quantity(req.ProductID)
	}
	err := s.cart.AddProduct(c.Request.Context(), &state.Session, state.Cart, req.ProductID, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(state.Cart))
}

func (s *Server) handleRemoveCartItem(c *gin.Context) {
	state := sessionState(c)
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		badRequest(c, "Invalid product id", err)
		return
	}
	s.cart.Remove(state.Cart, productID)
	c.JSON(http.StatusOK, toCartResponse(state.Cart))
}

func (s *Server) handleCheckout(c *gin.Context) {
	state := sessionState(c)
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	result, err := s.checkout.Checkout(c.Request.Context(), &state.Session, state.Cart, application.CheckoutInput{
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		AddressID:  req.AddressID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CheckoutResponse{
		Order:            toOrderResponse(*result.Order),
		RedirectAfterMS:  result.RedirectAfter.Milliseconds(),
		RedirectLocation: "/products",
	})
}
