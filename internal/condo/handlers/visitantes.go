package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createVisitanteRequest struct {
	MoradorID    uuid.UUID  `json:"morador_id" binding:"required"`
	Nome         string     `json:"nome" binding:"required"`
	Documento    string     `json:"documento" binding:"required"`
	PlacaVeiculo *string    `json:"placa_veiculo"`
	DataEntrada  *time.Time `json:"data_entrada"`
	IsPermanente bool       `json:"is_permanente"`
}

type updateVisitanteRequest struct {
	Nome         *string    `json:"nome"`
	Documento    *string    `json:"documento"`
	PlacaVeiculo *string    `json:"placa_veiculo"`
	DataEntrada  *time.Time `json:"data_entrada"`
	IsPermanente *bool      `json:"is_permanente"`
}

func (h *Handler) CreateVisitante(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createVisitanteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	visitante := &models.Visitante{
		MoradorID:    req.MoradorID,
		Nome:         req.Nome,
		Documento:    req.Documento,
		PlacaVeiculo: req.PlacaVeiculo,
		IsPermanente: req.IsPermanente,
	}
	if req.DataEntrada != nil {
		visitante.DataEntrada = *req.DataEntrada
	}
	created, err := h.services.Visitantes.CreateVisitante(c.Request.Context(), p, visitante)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetVisitante(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	visitante, err := h.services.Visitantes.GetVisitante(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, visitante)
}

func (h *Handler) UpdateVisitante(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateVisitanteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Visitantes.UpdateVisitante(c.Request.Context(), p, &models.VisitanteUpdate{
		ID:           id,
		Nome:         req.Nome,
		Documento:    req.Documento,
		PlacaVeiculo: req.PlacaVeiculo,
		DataEntrada:  req.DataEntrada,
		IsPermanente: req.IsPermanente,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RegistrarSaida stamps the visitor's exit time.
func (h *Handler) RegistrarSaida(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	visitante, err := h.services.Visitantes.RegistrarSaida(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, visitante)
}

func (h *Handler) DeleteVisitante(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Visitantes.DeleteVisitante(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListVisitantes(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	visitantes, pageInfo, err := h.services.Visitantes.ListVisitantes(c.Request.Context(), p, c.Query("search"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: visitantes, PageInfo: pageInfo})
}
