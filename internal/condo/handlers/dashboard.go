package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MoradorDashboard answers the resident home-screen counters.
func (h *Handler) MoradorDashboard(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	stats, err := h.services.Dashboard.MoradorDashboard(c.Request.Context(), p)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SindicoDashboard answers the manager overview counters.
func (h *Handler) SindicoDashboard(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	stats, err := h.services.Dashboard.SindicoDashboard(c.Request.Context(), p)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
