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

// EncomendaFilter selects which deliveries a list call returns. The default
// is pending-only; the "old deliveries" lookups flip to picked-up rows.
type EncomendaFilter struct {
	Search string
	// IncluirEntregues includes picked-up deliveries alongside pending ones.
	IncluirEntregues bool
	// UnidadeAntiga restricts to picked-up deliveries of one unit.
	UnidadeAntiga *uuid.UUID
	// CodigoAntiga looks up by tracking code, picked up or not.
	CodigoAntiga string
	// UnidadeID restricts to one unit (front-desk badge filter).
	UnidadeID *uuid.UUID
}

func (r *Repository) CreateEncomenda(ctx context.Context, encomenda *models.Encomenda) error {
	return r.db.WithContext(ctx).Create(encomenda).Error
}

func (r *Repository) GetEncomenda(ctx context.Context, id uuid.UUID) (*models.Encomenda, error) {
	var encomenda models.Encomenda
	result := r.db.WithContext(ctx).First(&encomenda, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &encomenda, nil
}

func (r *Repository) UpdateEncomenda(ctx context.Context, update *models.EncomendaUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Encomenda{}).
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

func (r *Repository) DeleteEncomenda(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Encomenda{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListEncomendas(ctx context.Context, scope access.Scope, filter EncomendaFilter, pg Pagination) ([]models.Encomenda, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Encomenda{}).Scopes(scope)

	switch {
	case filter.UnidadeAntiga != nil:
		query = query.Where("unidade_id = ? AND retirado_em IS NOT NULL", filter.UnidadeAntiga)
	case filter.CodigoAntiga != "":
		query = query.Where("codigo_rastreio LIKE ?", "%"+filter.CodigoAntiga+"%")
	case !filter.IncluirEntregues:
		query = query.Where("retirado_em IS NULL")
	}

	if filter.UnidadeID != nil {
		query = query.Where("unidade_id = ?", filter.UnidadeID)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"descricao LIKE ? OR codigo_rastreio LIKE ? OR destinatario_nome LIKE ? OR retirado_por LIKE ?",
			like, like, like, like,
		)
	}

	query = query.Order("created_at DESC")

	var encomendas []models.Encomenda
	info, err := paginate(query, pg, &encomendas)
	return encomendas, info, err
}

// PendingEncomendaTimes returns the creation timestamps of every pending
// (not picked up) delivery in scope, oldest first. Input for the aging badge.
func (r *Repository) PendingEncomendaTimes(ctx context.Context, scope access.Scope, unidadeID *uuid.UUID) ([]time.Time, error) {
	query := r.db.WithContext(ctx).Model(&models.Encomenda{}).Scopes(scope).
		Where("retirado_em IS NULL")
	if unidadeID != nil {
		query = query.Where("unidade_id = ?", unidadeID)
	}

	var times []time.Time
	err := query.Order("created_at").Pluck("created_at", &times).Error
	return times, err
}

// HasPendingEncomenda reports whether the unit has any delivery waiting for
// pickup.
func (r *Repository) HasPendingEncomenda(ctx context.Context, unidadeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Encomenda{}).
		Where("unidade_id = ? AND retirado_em IS NULL", unidadeID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
