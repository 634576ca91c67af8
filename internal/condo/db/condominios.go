package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"gorm.io/gorm"
)

func (r *Repository) CreateCondominio(ctx context.Context, condominio *models.Condominio) error {
	result := r.db.WithContext(ctx).Create(condominio)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetCondominio(ctx context.Context, id uuid.UUID) (*models.Condominio, error) {
	var condominio models.Condominio
	result := r.db.WithContext(ctx).First(&condominio, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &condominio, nil
}

func (r *Repository) UpdateCondominio(ctx context.Context, update *models.CondominioUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Condominio{}).
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

func (r *Repository) DeleteCondominio(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Condominio{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListCondominios(ctx context.Context, search string, pg Pagination) ([]models.Condominio, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Condominio{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("nome LIKE ? OR cnpj LIKE ?", like, like)
	}
	query = query.Order("nome")

	var condominios []models.Condominio
	info, err := paginate(query, pg, &condominios)
	return condominios, info, err
}

func (r *Repository) CondominioExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Condominio{}).
		Where("cnpj = ?", cnpj).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
