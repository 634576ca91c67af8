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

func (r *Repository) CreateEspaco(ctx context.Context, espaco *models.Espaco) error {
	return r.db.WithContext(ctx).Create(espaco).Error
}

func (r *Repository) GetEspaco(ctx context.Context, id uuid.UUID) (*models.Espaco, error) {
	var espaco models.Espaco
	result := r.db.WithContext(ctx).First(&espaco, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &espaco, nil
}

func (r *Repository) UpdateEspaco(ctx context.Context, update *models.EspacoUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Espaco{}).
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

func (r *Repository) DeleteEspaco(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Espaco{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListEspacos(ctx context.Context, scope access.Scope, search string, isActive *bool, pg Pagination) ([]models.Espaco, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.Espaco{}).Scopes(scope)
	if search != "" {
		query = query.Where("nome LIKE ?", "%"+search+"%")
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	query = query.Order("nome")

	var espacos []models.Espaco
	info, err := paginate(query, pg, &espacos)
	return espacos, info, err
}

// ------------------------ Inventário ------------------------

func (r *Repository) CreateInventarioItem(ctx context.Context, item *models.EspacoInventarioItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		// (espaco, codigo) is unique
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetInventarioItem(ctx context.Context, id uuid.UUID) (*models.EspacoInventarioItem, error) {
	var item models.EspacoInventarioItem
	result := r.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *Repository) UpdateInventarioItem(ctx context.Context, update *models.EspacoInventarioItemUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.EspacoInventarioItem{}).
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

func (r *Repository) DeleteInventarioItem(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EspacoInventarioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListInventarioItens(ctx context.Context, scope access.Scope, espacoID *uuid.UUID, search string, isActive *bool, pg Pagination) ([]models.EspacoInventarioItem, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.EspacoInventarioItem{}).Scopes(scope)
	if espacoID != nil {
		query = query.Where("espaco_id = ?", espacoID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("nome LIKE ? OR codigo LIKE ?", like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	query = query.Order("nome")

	var itens []models.EspacoInventarioItem
	info, err := paginate(query, pg, &itens)
	return itens, info, err
}
