// internal/adapters/httpapi/notices_handler.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListNotices(c *gin.Context) {
	state := sessionState(c)
	notices := s.notices.Active(state.Session.UserID)
	out := make([]NoticeResponse, 0, len(notices))
	for _, notice := range notices {
		out = append(out, toNoticeResponse(notice))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDismissNotice(c *gin.Context) {
	state := sessionState(c)
	s.notices.Dismiss(state.Session.UserID, c.Param("id"))
	c.Status(http.StatusNoContent)
}

// handleJournalTrail exposes a checkout's journal records for reconciliation.
func (s *Server) handleJournalTrail(c *gin.Context) {
	if s.journal == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND", Message: "Journal not configured"})
		return
	}
	entries, err := s.journal.ListByCheckout(c.Request.Context(), c.Param("checkoutId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
