package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createEspacoRequest struct {
	Nome              string  `json:"nome" binding:"required"`
	CapacidadePessoas int     `json:"capacidade_pessoas" binding:"required"`
	ValorAluguel      float64 `json:"valor_aluguel"`
}

type updateEspacoRequest struct {
	Nome              *string  `json:"nome"`
	CapacidadePessoas *int     `json:"capacidade_pessoas"`
	ValorAluguel      *float64 `json:"valor_aluguel"`
	IsActive          *bool    `json:"is_active"`
}

type createInventarioItemRequest struct {
	Nome   string `json:"nome" binding:"required"`
	Codigo string `json:"codigo" binding:"required"`
}

type updateInventarioItemRequest struct {
	Nome     *string `json:"nome"`
	Codigo   *string `json:"codigo"`
	IsActive *bool   `json:"is_active"`
}

func (h *Handler) CreateEspaco(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createEspacoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Espacos.CreateEspaco(c.Request.Context(), p, &models.Espaco{
		Nome:              req.Nome,
		CapacidadePessoas: req.CapacidadePessoas,
		ValorAluguel:      req.ValorAluguel,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEspaco(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	espaco, err := h.services.Espacos.GetEspaco(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, espaco)
}

func (h *Handler) UpdateEspaco(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateEspacoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Espacos.UpdateEspaco(c.Request.Context(), p, &models.EspacoUpdate{
		ID:                id,
		Nome:              req.Nome,
		CapacidadePessoas: req.CapacidadePessoas,
		ValorAluguel:      req.ValorAluguel,
		IsActive:          req.IsActive,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteEspaco(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Espacos.DeleteEspaco(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListEspacos(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	espacos, pageInfo, err := h.services.Espacos.ListEspacos(c.Request.Context(), p, c.Query("search"), queryBool(c, "is_active"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: espacos, PageInfo: pageInfo})
}

// CreateInventarioItem adds an inventory item to the space in the path.
func (h *Handler) CreateInventarioItem(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	espacoID, ok := pathID(c)
	if !ok {
		return
	}
	var req createInventarioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Espacos.CreateInventarioItem(c.Request.Context(), p, &models.EspacoInventarioItem{
		EspacoID: espacoID,
		Nome:     req.Nome,
		Codigo:   req.Codigo,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetInventarioItem(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.services.Espacos.GetInventarioItem(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateInventarioItem(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateInventarioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Espacos.UpdateInventarioItem(c.Request.Context(), p, &models.EspacoInventarioItemUpdate{
		ID:       id,
		Nome:     req.Nome,
		Codigo:   req.Codigo,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteInventarioItem(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Espacos.DeleteInventarioItem(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListInventario lists the inventory of the space in the path.
func (h *Handler) ListInventario(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	espacoID, ok := pathID(c)
	if !ok {
		return
	}
	itens, pageInfo, err := h.services.Espacos.ListInventarioItens(c.Request.Context(), p, &espacoID, c.Query("search"), queryBool(c, "is_active"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: itens, PageInfo: pageInfo})
}
