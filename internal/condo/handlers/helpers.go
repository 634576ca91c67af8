package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/auth"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"go.uber.org/zap"
)

// Handler holds the dependencies shared by every route.
type Handler struct {
	services  Services
	jwtSecret string
	logger    *zap.Logger
}

// statusForError maps the sentinel taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, e.ErrDuplicate), errors.Is(err, e.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, e.ErrInvalidInput),
		errors.Is(err, e.ErrInvalidFormat),
		errors.Is(err, e.ErrInvalidChecksum),
		errors.Is(err, e.ErrRetroactiveDate),
		errors.Is(err, e.ErrTooFarInFuture):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()),
		)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// principal pulls the authenticated Principal; the middleware guarantees it
// on every /v1 route.
func (h *Handler) principal(c *gin.Context) (access.Principal, bool) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return access.Principal{}, false
	}
	return p, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/page_size; the repository clamps the values.
func parsePagination(c *gin.Context) db.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return db.Pagination{Page: page, PageSize: pageSize}
}

func queryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryUUID(c *gin.Context, key string) *uuid.UUID {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// queryDate parses a YYYY-MM-DD query parameter.
func queryDate(c *gin.Context, key string) *time.Time {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &value
}

// listResponse is the envelope every collection endpoint returns.
type listResponse struct {
	Results  interface{} `json:"results"`
	PageInfo db.PageInfo `json:"page_info"`
}
