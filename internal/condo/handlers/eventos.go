package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createEventoRequest struct {
	Titulo         string     `json:"titulo" binding:"required"`
	Descricao      string     `json:"descricao"`
	EspacoID       *uuid.UUID `json:"espaco_id"`
	LocalTexto     *string    `json:"local_texto"`
	DatetimeInicio *time.Time `json:"datetime_inicio"`
	DatetimeFim    *time.Time `json:"datetime_fim"`
}

type updateEventoRequest struct {
	Titulo         *string    `json:"titulo"`
	Descricao      *string    `json:"descricao"`
	EspacoID       *uuid.UUID `json:"espaco_id"`
	LocalTexto     *string    `json:"local_texto"`
	DatetimeInicio *time.Time `json:"datetime_inicio"`
	DatetimeFim    *time.Time `json:"datetime_fim"`
}

func (h *Handler) CreateEvento(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createEventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Eventos.CreateEvento(c.Request.Context(), p, &models.Evento{
		Titulo:         req.Titulo,
		Descricao:      req.Descricao,
		EspacoID:       req.EspacoID,
		LocalTexto:     req.LocalTexto,
		DatetimeInicio: req.DatetimeInicio,
		DatetimeFim:    req.DatetimeFim,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEvento(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	evento, err := h.services.Eventos.GetEvento(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, evento)
}

func (h *Handler) UpdateEvento(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateEventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Eventos.UpdateEvento(c.Request.Context(), p, &models.EventoUpdate{
		ID:             id,
		Titulo:         req.Titulo,
		Descricao:      req.Descricao,
		EspacoID:       req.EspacoID,
		LocalTexto:     req.LocalTexto,
		DatetimeInicio: req.DatetimeInicio,
		DatetimeFim:    req.DatetimeFim,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteEvento(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Eventos.DeleteEvento(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListEventos(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	eventos, pageInfo, err := h.services.Eventos.ListEventos(c.Request.Context(), p, c.Query("search"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: eventos, PageInfo: pageInfo})
}
