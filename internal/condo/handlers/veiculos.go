package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createVeiculoRequest struct {
	Placa       string    `json:"placa" binding:"required"`
	MarcaModelo string    `json:"marca_modelo"`
	MoradorID   uuid.UUID `json:"morador_id" binding:"required"`
}

type updateVeiculoRequest struct {
	Placa       *string `json:"placa"`
	MarcaModelo *string `json:"marca_modelo"`
	IsActive    *bool   `json:"is_active"`
}

func (h *Handler) CreateVeiculo(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Veiculos.CreateVeiculo(c.Request.Context(), p, &models.Veiculo{
		Placa:       req.Placa,
		MarcaModelo: req.MarcaModelo,
		MoradorID:   req.MoradorID,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetVeiculo(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	veiculo, err := h.services.Veiculos.GetVeiculo(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, veiculo)
}

func (h *Handler) UpdateVeiculo(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Veiculos.UpdateVeiculo(c.Request.Context(), p, &models.VeiculoUpdate{
		ID:          id,
		Placa:       req.Placa,
		MarcaModelo: req.MarcaModelo,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteVeiculo(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Veiculos.DeleteVeiculo(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListVeiculos(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	veiculos, pageInfo, err := h.services.Veiculos.ListVeiculos(c.Request.Context(), p, c.Query("search"), queryBool(c, "is_active"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: veiculos, PageInfo: pageInfo})
}
