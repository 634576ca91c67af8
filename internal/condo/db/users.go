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

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicate
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, update *models.UserUpdate) error {
	values := map[string]interface{}{}
	if update.FullName != nil {
		values["full_name"] = *update.FullName
	}
	if update.CPF != nil {
		values["cpf"] = *update.CPF
	}
	if update.Phone != nil {
		values["phone"] = *update.Phone
	}
	if update.PasswordHash != nil {
		values["password_hash"] = *update.PasswordHash
	}
	if update.Roles != nil {
		values["roles"] = *update.Roles
	}
	if update.IsActive != nil {
		values["is_active"] = *update.IsActive
	}
	if update.FirstAccess != nil {
		values["first_access"] = *update.FirstAccess
	}
	if update.UnidadeID != nil {
		values["unidade_id"] = *update.UnidadeID
	}
	if len(values) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", update.ID).
		Updates(values)
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

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListUsers(ctx context.Context, scope access.Scope, search string, pg Pagination) ([]models.User, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"full_name LIKE ? OR username LIKE ? OR cpf LIKE ?",
			like, like, like,
		)
	}
	query = query.Order("full_name")

	var users []models.User
	info, err := paginate(query, pg, &users)
	return users, info, err
}

// CountUsersByRole counts the condominium's users carrying the given role,
// optionally restricted to active ones.
func (r *Repository) CountUsersByRole(ctx context.Context, condominioID uuid.UUID, role models.Role, activeOnly bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("condominio_id = ?", condominioID).
		Where("roles LIKE ?", "%\""+string(role)+"\"%")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// UsernameTaken reports whether another user already holds the username.
func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
