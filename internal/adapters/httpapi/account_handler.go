// internal/adapters/httpapi/account_handler.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egokay/storefront.git/internal/domain"
)

func (s *Server) handleListAddresses(c *gin.Context) {
	state := sessionState(c)
	addresses, err := s.account.ListAddresses(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressResponse(address))
	}
	c.JSON(http.StatusOK, out)
}

// handleSaveAddress creates a new address, or updates one when the request
// names an existing document id.
func (s *Server) handleSaveAddress(c *gin.Context) {
	state := sessionState(c)
	var req SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	saved, err := s.account.SaveAddress(c.Request.Context(), &state.Session, &domain.Address{
		DocumentID: req.DocumentID,
		Title:      req.Title,
		Country:    req.Country,
		City:       req.City,
		District:   req.District,
		Street:     req.Street,
		PostalCode: req.PostalCode,
		UserID:     state.Session.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if req.DocumentID != "" {
		status = http.StatusOK
	}
	c.JSON(status, toAddressResponse(*saved))
}

func (s *Server) handleDeleteAddress(c *gin.Context) {
	state := sessionState(c)
	if err := s.account.DeleteAddress(c.Request.Context(), &state.Session, c.Param("documentId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListPaymentMethods(c *gin.Context) {
	state := sessionState(c)
	methods, err := s.account.ListPaymentMethods(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, method := range methods {
		out = append(out, toPaymentMethodResponse(method))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAddPaymentMethod(c *gin.Context) {
	state := sessionState(c)
	var req AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	method, err := s.account.AddPaymentMethod(c.Request.Context(), &state.Session, &domain.PaymentMethod{
		HolderName:  req.HolderName,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
		UserID:      state.Session.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentMethodResponse(*method))
}

func (s *Server) handleDeletePaymentMethod(c *gin.Context) {
	state := sessionState(c)
	if err := s.account.DeletePaymentMethod(c.Request.Context(), &state.Session, c.Param("documentId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListOrders(c *gin.Context) {
	state := sessionState(c)
	orders, err := s.account.ListOrders(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, out)
}
