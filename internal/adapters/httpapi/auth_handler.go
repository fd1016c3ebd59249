// internal/adapters/httpapi/auth_handler.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	user, err := s.sessions.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	sess, err := s.sessions.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "UNAUTHORIZED",
			Message: "Invalid credentials",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: sess.Token, UserID: sess.UserID, Username: sess.Username})
}

func (s *Server) handleLogout(c *gin.Context) {
	state := sessionState(c)
	s.sessions.Logout(c.Request.Context(), state.Session.Token)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleMe(c *gin.Context) {
	state := sessionState(c)
	c.JSON(http.StatusOK, UserResponse{ID: state.Session.UserID, Username: state.Session.Username})
}
