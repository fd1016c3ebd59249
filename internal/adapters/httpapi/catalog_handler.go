// internal/adapters/httpapi/catalog_handler.go
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListProducts(c *gin.Context) {
	state := sessionState(c)
	var categoryID int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, "Invalid category id", err)
			return
		}
		categoryID = id
	}
	products, err := s.catalog.ListProducts(c.Request.Context(), &state.Session, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	state := sessionState(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid product id", err)
		return
	}
	product, err := s.catalog.GetProduct(c.Request.Context(), &state.Session, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// handleSelectQuantity clamps the requested quantity-selector value against
// live stock and remembers the choice for the session.
func (s *Server) handleSelectQuantity(c *gin.Context) {
	state := sessionState(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid product id", err)
		return
	}
	var req SelectQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	quantity, err := s.catalog.SelectQuantity(c.Request.Context(), &state.Session, state.Cart, id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if quantity > 0 {
		s.sessions.SaveQuantity(c.Request.Context(), state, id, quantity)
	}
	c.JSON(http.StatusOK, SelectQuantityResponse{Quantity: quantity})
}

func (s *Server) handleListCategories(c *gin.Context) {
	state := sessionState(c)
	categories, err := s.catalog.ListCategories(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListCampaigns(c *gin.Context) {
	state := sessionState(c)
	campaigns, err := s.catalog.ListCampaigns(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, toCampaignResponse(campaign))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetCampaign(c *gin.Context) {
	state := sessionState(c)
	campaign, err := s.catalog.GetCampaign(c.Request.Context(), &state.Session, c.Param("documentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCampaignResponse(*campaign))
}
