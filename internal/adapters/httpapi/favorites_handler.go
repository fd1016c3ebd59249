// internal/adapters/httpapi/favorites_handler.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListFavorites(c *gin.Context) {
	state := sessionState(c)
	favorites, err := s.favorites.List(c.Request.Context(), &state.Session)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, toFavoriteResponse(favorite))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleToggleFavorite(c *gin.Context) {
	state := sessionState(c)
	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	favorited, err := s.favorites.Toggle(c.Request.Context(), &state.Session, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleFavoriteResponse{Favorited: favorited})
}

func (s *Server) handleRemoveFavorite(c *gin.Context) {
	state := sessionState(c)
	if err := s.favorites.Remove(c.Request.Context(), &state.Session, c.Param("documentId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
