package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createEncomendaRequest struct {
	UnidadeID        *uuid.UUID `json:"unidade_id"`
	DestinatarioNome string     `json:"destinatario_nome" binding:"required"`
	Descricao        string     `json:"descricao"`
	CodigoRastreio   *string    `json:"codigo_rastreio"`
}

type updateEncomendaRequest struct {
	UnidadeID        *uuid.UUID `json:"unidade_id"`
	DestinatarioNome *string    `json:"destinatario_nome"`
	Descricao        *string    `json:"descricao"`
	CodigoRastreio   *string    `json:"codigo_rastreio"`
}

type registrarRetiradaRequest struct {
	RetiradoPor string `json:"retirado_por" binding:"required"`
}

func (h *Handler) CreateEncomenda(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createEncomendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Encomendas.CreateEncomenda(c.Request.Context(), p, &models.Encomenda{
		UnidadeID:        req.UnidadeID,
		DestinatarioNome: req.DestinatarioNome,
		Descricao:        req.Descricao,
		CodigoRastreio:   req.CodigoRastreio,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEncomenda(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	encomenda, err := h.services.Encomendas.GetEncomenda(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, encomenda)
}

func (h *Handler) UpdateEncomenda(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateEncomendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Encomendas.UpdateEncomenda(c.Request.Context(), p, &models.EncomendaUpdate{
		ID:               id,
		UnidadeID:        req.UnidadeID,
		DestinatarioNome: req.DestinatarioNome,
		Descricao:        req.Descricao,
		CodigoRastreio:   req.CodigoRastreio,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RegistrarRetirada marks a delivery as picked up, recording who took it.
func (h *Handler) RegistrarRetirada(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req registrarRetiradaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	encomenda, err := h.services.Encomendas.RegistrarRetirada(c.Request.Context(), p, id, req.RetiradoPor)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, encomenda)
}

func (h *Handler) DeleteEncomenda(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Encomendas.DeleteEncomenda(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListEncomendas(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	filter := db.EncomendaFilter{
		Search:        c.Query("search"),
		UnidadeAntiga: queryUUID(c, "unidade_antiga"),
		CodigoAntiga:  c.Query("codigo_antiga"),
		UnidadeID:     queryUUID(c, "unidade_id"),
	}
	if v := queryBool(c, "incluir_entregues"); v != nil {
		filter.IncluirEntregues = *v
	}
	encomendas, pageInfo, err := h.services.Encomendas.ListEncomendas(c.Request.Context(), p, filter, parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: encomendas, PageInfo: pageInfo})
}

// EncomendaBadge answers the pending-delivery aging summary for the caller's
// scope, optionally narrowed to one unit.
func (h *Handler) EncomendaBadge(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	summary, err := h.services.Encomendas.Badge(c.Request.Context(), p, queryUUID(c, "unidade_id"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
