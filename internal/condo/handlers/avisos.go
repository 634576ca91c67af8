package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createAvisoRequest struct {
	Titulo     string                 `json:"titulo" binding:"required"`
	Descricao  string                 `json:"descricao"`
	Grupo      models.Role            `json:"grupo" binding:"required"`
	Prioridade models.AvisoPrioridade `json:"prioridade"`
	Status     models.AvisoStatus     `json:"status"`
	DataInicio *time.Time             `json:"data_inicio"`
	DataFim    *time.Time             `json:"data_fim"`
}

type updateAvisoRequest struct {
	Titulo     *string                 `json:"titulo"`
	Descricao  *string                 `json:"descricao"`
	Grupo      *models.Role            `json:"grupo"`
	Prioridade *models.AvisoPrioridade `json:"prioridade"`
	Status     *models.AvisoStatus     `json:"status"`
	DataInicio *time.Time              `json:"data_inicio"`
	DataFim    *time.Time              `json:"data_fim"`
}

func (h *Handler) CreateAviso(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createAvisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	aviso := &models.Aviso{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Grupo:      req.Grupo,
		Prioridade: req.Prioridade,
		Status:     req.Status,
		DataFim:    req.DataFim,
	}
	if req.DataInicio != nil {
		aviso.DataInicio = *req.DataInicio
	}
	created, err := h.services.Avisos.CreateAviso(c.Request.Context(), p, aviso)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetAviso(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	aviso, err := h.services.Avisos.GetAviso(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, aviso)
}

func (h *Handler) UpdateAviso(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateAvisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Avisos.UpdateAviso(c.Request.Context(), p, &models.AvisoUpdate{
		ID:         id,
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Grupo:      req.Grupo,
		Prioridade: req.Prioridade,
		Status:     req.Status,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAviso(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Avisos.DeleteAviso(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListAvisos(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	filter := db.AvisoFilter{Search: c.Query("search")}
	if raw, ok := c.GetQuery("status"); ok {
		status := models.AvisoStatus(raw)
		filter.Status = &status
	}
	if raw, ok := c.GetQuery("prioridade"); ok {
		prioridade := models.AvisoPrioridade(raw)
		filter.Prioridade = &prioridade
	}
	if raw, ok := c.GetQuery("grupo"); ok {
		grupo := models.Role(raw)
		filter.Grupo = &grupo
	}
	if v := queryBool(c, "vigente"); v != nil && *v {
		now := time.Now()
		filter.Vigente = &now
	}
	avisos, pageInfo, err := h.services.Avisos.ListAvisos(c.Request.Context(), p, filter, parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: avisos, PageInfo: pageInfo})
}
