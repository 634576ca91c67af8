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

// AvisoFilter narrows notice listings.
type AvisoFilter struct {
	Search     string
	Status     *models.AvisoStatus
	Prioridade *models.AvisoPrioridade
	Grupo      *models.Role
	// Vigente keeps only notices currently in effect at the given instant.
	Vigente *time.Time
}

func (r *Repository) CreateAviso(ctx context.Context, aviso *models.Aviso) error {
	return r.db.WithContext(ctx).Create(aviso).Error
}

func (r *Repository) GetAviso(ctx context.Context, id uuid.UUID) (*models.Aviso, error) {
	var aviso models.Aviso
	result := r.db.WithContext(ctx).First(&aviso, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &aviso, nil
}

func (r *Repository) UpdateAviso(ctx context.Context, update *models.AvisoUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Aviso{}).
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

func (r *Repository) DeleteAviso(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Aviso{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func vigenteAt(query *gorm.DB, now time.Time) *gorm.DB {
	return query.Where("status = ?", models.AvisoAtivo).
		Where("data_inicio <= ?", now).
		Where("data_fim >= ? OR data_fim IS NULL", now)
}

func (r *Repository) ListAvisos(ctx context.Context, scope access.Scope, filter AvisoFilter, pg Pagination) ([]models.Aviso, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Aviso{}).Scopes(scope)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("titulo LIKE ? OR descricao LIKE ?", like, like)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Prioridade != nil {
		query = query.Where("prioridade = ?", *filter.Prioridade)
	}
	if filter.Grupo != nil {
		query = query.Where("grupo = ?", *filter.Grupo)
	}
	if filter.Vigente != nil {
		query = vigenteAt(query, *filter.Vigente)
	}
	query = query.Order("data_inicio DESC, created_at DESC")

	var avisos []models.Aviso
	info, err := paginate(query, pg, &avisos)
	return avisos, info, err
}

// CountAvisosVigentes counts scoped notices in effect at the given instant.
func (r *Repository) CountAvisosVigentes(ctx context.Context, scope access.Scope, now time.Time) (int64, error) {
	query := vigenteAt(r.db.WithContext(ctx).Model(&models.Aviso{}).Scopes(scope), now)
	var count int64
	err := query.Count(&count).Error
	return count, err
}
