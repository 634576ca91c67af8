package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

// Reservation dates travel as plain YYYY-MM-DD strings; a reservation always
// covers the whole day.
const reservaDateLayout = "2006-01-02"

type createReservaRequest struct {
	EspacoID    uuid.UUID `json:"espaco_id" binding:"required"`
	MoradorID   uuid.UUID `json:"morador_id" binding:"required"`
	DataReserva string    `json:"data_reserva" binding:"required"`
}

type updateReservaRequest struct {
	DataReserva *string               `json:"data_reserva"`
	Status      *models.ReservaStatus `json:"status"`
}

func (h *Handler) CreateReserva(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req createReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	data, err := time.Parse(reservaDateLayout, req.DataReserva)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data_reserva, want YYYY-MM-DD"})
		return
	}

	created, err := h.services.Reservas.CreateReserva(c.Request.Context(), p, &models.EspacoReserva{
		EspacoID:    req.EspacoID,
		MoradorID:   req.MoradorID,
		DataReserva: data,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetReserva(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	reserva, err := h.services.Reservas.GetReserva(c.Request.Context(), p, id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reserva)
}

func (h *Handler) UpdateReserva(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	update := &models.EspacoReservaUpdate{ID: id, Status: req.Status}
	if req.DataReserva != nil {
		data, err := time.Parse(reservaDateLayout, *req.DataReserva)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data_reserva, want YYYY-MM-DD"})
			return
		}
		update.DataReserva = &data
	}

	updated, err := h.services.Reservas.UpdateReserva(c.Request.Context(), p, update)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelReserva cancels a reservation and frees its date.
func (h *Handler) CancelReserva(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Reservas.CancelReserva(c.Request.Context(), p, id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListReservas(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	filter := db.ReservaFilter{
		EspacoID:  queryUUID(c, "espaco_id"),
		MoradorID: queryUUID(c, "morador_id"),
		DataIni:   queryDate(c, "data_ini"),
		DataFim:   queryDate(c, "data_fim"),
	}
	reservas, pageInfo, err := h.services.Reservas.ListReservas(c.Request.Context(), p, filter, parsePagination(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: reservas, PageInfo: pageInfo})
}
