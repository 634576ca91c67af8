package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createCondominioRequest struct {
	Nome        string  `json:"nome" binding:"required"`
	CNPJ        string  `json:"cnpj" binding:"required"`
	Telefone    string  `json:"telefone"`
	CEP         string  `json:"cep"`
	Numero      string  `json:"numero"`
	Complemento *string `json:"complemento"`
}

type updateCondominioRequest struct {
	Nome        *string `json:"nome"`
	Telefone    *string `json:"telefone"`
	CEP         *string `json:"cep"`
	Numero      *string `json:"numero"`
	Complemento *string `json:"complemento"`
	IsAtivo     *bool   `json:"is_ativo"`
}

func (h *Handler) CreateCondominio(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createCondominioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Condominios.CreateCondominio(c.Request.Context(), p, &models.Condominio{
		Nome:        req.Nome,
		CNPJ:        req.CNPJ,
		Telefone:    req.Telefone,
		CEP:         req.CEP,
		Numero:      req.Numero,
		Complemento: req.Complemento,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetCondominio(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	condominio, err := h.services.Condominios.GetCondominio(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, condominio)
}

func (h *Handler) UpdateCondominio(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCondominioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Condominios.UpdateCondominio(c.Request.Context(), p, &models.CondominioUpdate{
		ID:          id,
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		CEP:         req.CEP,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		IsAtivo:     req.IsAtivo,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCondominio(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Condominios.DeleteCondominio(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCondominios(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	condominios, pageInfo, err := h.services.Condominios.ListCondominios(c.Request.Context(), p, c.Query("search"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: condominios, PageInfo: pageInfo})
}
