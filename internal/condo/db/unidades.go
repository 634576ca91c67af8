package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateUnidade(ctx context.Context, unidade *models.Unidade) error {
	return r.db.WithContext(ctx).Create(unidade).Error
}

func (r *Repository) GetUnidade(ctx context.Context, id uuid.UUID) (*models.Unidade, error) {
	var unidade models.Unidade
	result := r.db.WithContext(ctx).First(&unidade, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &unidade, nil
}

func (r *Repository) UpdateUnidade(ctx context.Context, update *models.UnidadeUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Unidade{}).
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

func (r *Repository) DeleteUnidade(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Unidade{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListUnidades(ctx context.Context, scope access.Scope, search string, isActive *bool, pg Pagination) ([]models.Unidade, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Unidade{}).Scopes(scope)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("numero LIKE ? OR bloco LIKE ?", like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	query = query.Order("bloco, numero")

	var unidades []models.Unidade
	info, err := paginate(query, pg, &unidades)
	return unidades, info, err
}

// UnidadeExists reports whether another unit already uses the (numero, bloco)
// pair. The pair is unique at the application layer only.
func (r *Repository) UnidadeExists(ctx context.Context, numero string, bloco *string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Unidade{}).
		Where("numero = ?", numero)
	if bloco != nil && *bloco != "" {
		query = query.Where("bloco = ?", *bloco)
	} else {
		query = query.Where("bloco IS NULL OR bloco = ''")
	}
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Limit(1).Count(&count).Error
	return count > 0, err
}

// UnidadeHasMoradores reports whether any resident still references the unit.
// Units with residents are deactivated instead of deleted.
func (r *Repository) UnidadeHasMoradores(ctx context.Context, unidadeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("unidade_id = ?", unidadeID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
