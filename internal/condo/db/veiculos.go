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

func (r *Repository) CreateVeiculo(ctx context.Context, veiculo *models.Veiculo) error {
	result := r.db.WithContext(ctx).Create(veiculo)
	if result.Error != nil {
		// (placa, morador) is unique
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetVeiculo(ctx context.Context, id uuid.UUID) (*models.Veiculo, error) {
	var veiculo models.Veiculo
	result := r.db.WithContext(ctx).First(&veiculo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &veiculo, nil
}

func (r *Repository) UpdateVeiculo(ctx context.Context, update *models.VeiculoUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Veiculo{}).
		Where("id = ?", update.ID).
		Updates(update)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteVeiculo(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Veiculo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListVeiculos(ctx context.Context, scope access.Scope, search string, isActive *bool, pg Pagination) ([]models.Veiculo, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Veiculo{}).Scopes(scope)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("placa LIKE ? OR marca_modelo LIKE ?", like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	query = query.Order("created_at DESC")

	var veiculos []models.Veiculo
	info, err := paginate(query, pg, &veiculos)
	return veiculos, info, err
}
