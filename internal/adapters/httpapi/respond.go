// internal/adapters/httpapi/respond.go
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/egokay/storefront.git/internal/application"
)

func badRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: "INVALID_INPUT", Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// respondError maps application errors to HTTP statuses. Anything it does
// not recognize becomes a 500.
func respondError(c *gin.Context, err error) {
	var shortfall *application.StockShortfallError
	switch {
	case errors.Is(err, application.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "UNAUTHORIZED", Message: "Session expired"})
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND", Message: "Resource not found", Details: err.Error()})
	case errors.As(err, &shortfall):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "OUT_OF_STOCK", Message: shortfall.Error()})
	case errors.Is(err, application.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "INSUFFICIENT_BALANCE", Message: "Kart bakiyesi yetersiz!"})
	case errors.Is(err, application.ErrInvalidCard):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_CARD", Message: "Geçersiz kart bilgileri!"})
	case errors.Is(err, application.ErrMissingSelection):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "MISSING_SELECTION", Message: "Lütfen kart ve adres seçimi yapınız."})
	case errors.Is(err, application.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "EMPTY_CART", Message: "Cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL", Message: "Unexpected error", Details: err.Error()})
	}
}
