package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/auth"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token       string       `json:"token"`
	User        *models.User `json:"user"`
	FirstAccess bool         `json:"first_access"`
}

// Login authenticates by username and password and answers a signed token.
// Bad credentials and deactivated accounts both come back as 401 without
// saying which check failed.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.services.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, e.ErrForbidden) || errors.Is(err, e.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.abortWithError(c, err)
		return
	}

	token, err := auth.GenerateToken(user, h.jwtSecret)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:       token,
		User:        user,
		FirstAccess: user.FirstAccess,
	})
}
