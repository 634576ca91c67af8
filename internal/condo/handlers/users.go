package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

type createUserRequest struct {
	Username     string        `json:"username" binding:"required"`
	Password     string        `json:"password" binding:"required"`
	FullName     string        `json:"full_name" binding:"required"`
	CPF          string        `json:"cpf" binding:"required"`
	Phone        string        `json:"phone" binding:"required"`
	Roles        []models.Role `json:"roles" binding:"required"`
	Staff        bool          `json:"staff"`
	CondominioID *uuid.UUID    `json:"condominio_id"`
	UnidadeID    *uuid.UUID    `json:"unidade_id"`
}

type updateUserRequest struct {
	FullName  *string        `json:"full_name"`
	CPF       *string        `json:"cpf"`
	Phone     *string        `json:"phone"`
	Roles     *[]models.Role `json:"roles"`
	IsActive  *bool          `json:"is_active"`
	UnidadeID *uuid.UUID     `json:"unidade_id"`
}

type changePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) CreateUser(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     req.FullName,
		CPF:          req.CPF,
		Phone:        req.Phone,
		Roles:        req.Roles,
		Staff:        req.Staff,
		CondominioID: req.CondominioID,
		UnidadeID:    req.UnidadeID,
	}
	created, err := h.services.Users.CreateUser(c.Request.Context(), p, user, req.Password)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetUser(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.services.Users.GetUser(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Users.UpdateUser(c.Request.Context(), p, &models.UserUpdate{
		ID:        id,
		FullName:  req.FullName,
		CPF:       req.CPF,
		Phone:     req.Phone,
		Roles:     req.Roles,
		IsActive:  req.IsActive,
		UnidadeID: req.UnidadeID,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.services.Users.ChangePassword(c.Request.Context(), p, id, req.Password); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Users.DeleteUser(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListUsers(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	users, pageInfo, err := h.services.Users.ListUsers(c.Request.Context(), p, c.Query("search"), parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: users, PageInfo: pageInfo})
}
