package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createUnidadeRequest struct {
	Numero string  `json:"numero" binding:"required"`
	Bloco  *string `json:"bloco"`
}

type updateUnidadeRequest struct {
	Numero   *string `json:"numero"`
	Bloco    *string `json:"bloco"`
	IsActive *bool   `json:"is_active"`
}

func (h *Handler) CreateUnidade(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createUnidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Unidades.CreateUnidade(c.Request.Context(), p, &models.Unidade{
		Numero: req.Numero,
		Bloco:  req.Bloco,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetUnidade(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	unidade, err := h.services.Unidades.GetUnidade(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, unidade)
}

func (h *Handler) UpdateUnidade(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateUnidadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Unidades.UpdateUnidade(c.Request.Context(), p, &models.UnidadeUpdate{
		ID:       id,
		Numero:   req.Numero,
		Bloco:    req.Bloco,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUnidade removes an empty unit; a unit that still has residents is
// deactivated instead, and the response says which happened.
func (h *Handler) DeleteUnidade(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	deactivated, err := h.services.Unidades.DeleteUnidade(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deactivated": deactivated})
}

func (h *Handler) ListUnidades(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	unidades, pageInfo, err := h.services.Unidades.ListUnidades(c.Request.Context(), p, c.Query("search"), queryBool(c, "is_active"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: unidades, PageInfo: pageInfo})
}
