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

func (r *Repository) CreateVisitante(ctx context.Context, visitante *models.Visitante) error {
	return r.db.WithContext(ctx).Create(visitante).Error
}

func (r *Repository) GetVisitante(ctx context.Context, id uuid.UUID) (*models.Visitante, error) {
	var visitante models.Visitante
	result := r.db.WithContext(ctx).First(&visitante, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &visitante, nil
}

func (r *Repository) UpdateVisitante(ctx context.Context, update *models.VisitanteUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Visitante{}).
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

func (r *Repository) DeleteVisitante(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Visitante{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListVisitantes(ctx context.Context, scope access.Scope, search string, pg Pagination) ([]models.Visitante, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Visitante{}).Scopes(scope)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"nome LIKE ? OR documento LIKE ? OR placa_veiculo LIKE ?",
			like, like, like,
		)
	}
	query = query.Order("data_entrada DESC")

	var visitantes []models.Visitante
	info, err := paginate(query, pg, &visitantes)
	return visitantes, info, err
}

// CountVisitantesNoCondominio counts scoped visitors that have not left yet.
func (r *Repository) CountVisitantesNoCondominio(ctx context.Context, scope access.Scope) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Visitante{}).Scopes(scope).
		Where("data_saida IS NULL").
		Count(&count).Error
	return count, err
}

// CountVisitantes counts scoped visitors created at or after the given time.
// A zero time counts everything.
func (r *Repository) CountVisitantes(ctx context.Context, scope access.Scope, since time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Visitante{}).Scopes(scope)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
