package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateEvento(ctx context.Context, evento *models.Evento) error {
	return r.db.WithContext(ctx).Create(evento).Error
}

func (r *Repository) GetEvento(ctx context.Context, id uuid.UUID) (*models.Evento, error) {
	var evento models.Evento
	result := r.db.WithContext(ctx).First(&evento, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &evento, nil
}

func (r *Repository) UpdateEvento(ctx context.Context, update *models.EventoUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Evento{}).
		Where("id = ?", update.ID).
		Updates(update)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteEvento(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Evento{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListEventos(ctx context.Context, scope access.Scope, search string, pg Pagination) ([]models.Evento, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Evento{}).Scopes(scope)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("titulo LIKE ? OR descricao LIKE ? OR local_texto LIKE ?", like, like, like)
	}
	query = query.Order("datetime_inicio")

	var eventos []models.Evento
	info, err := paginate(query, pg, &eventos)
	return eventos, info, err
}

// CountEventos counts scoped events starting inside the inclusive window.
func (r *Repository) CountEventos(ctx context.Context, scope access.Scope, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Evento{}).Scopes(scope).
		Where("datetime_inicio >= ? AND datetime_inicio <= ?", from, to).
		Count(&count).Error
	return count, err
}
