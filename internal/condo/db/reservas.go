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

// ReservaFilter narrows reservation listings.
type ReservaFilter struct {
	EspacoID  *uuid.UUID
	MoradorID *uuid.UUID
	DataIni   *time.Time
	DataFim   *time.Time
}

// CreateReserva inserts a reservation. The (espaco, data) unique index is
// the arbiter of the double-booking race: whichever insert commits second
// gets ErrSlotTaken, regardless of any pre-check the caller ran.
func (r *Repository) CreateReserva(ctx context.Context, reserva *models.EspacoReserva) error {
	result := r.db.WithContext(ctx).Create(reserva)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrSlotTaken
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetReserva(ctx context.Context, id uuid.UUID) (*models.EspacoReserva, error) {
	var reserva models.EspacoReserva
	result := r.db.WithContext(ctx).First(&reserva, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &reserva, nil
}

func (r *Repository) UpdateReserva(ctx context.Context, update *models.EspacoReservaUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.EspacoReserva{}).
		Where("id = ?", update.ID).
		Updates(update)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrSlotTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteReserva removes the reservation row, freeing its (espaco, data) slot.
func (r *Repository) DeleteReserva(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EspacoReserva{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) ListReservas(ctx context.Context, scope access.Scope, filter ReservaFilter, pg Pagination) ([]models.EspacoReserva, PageInfo, error) {
	query := r.db.WithContext(ctx).Model(&models.EspacoReserva{}).Scopes(scope)
	if filter.EspacoID != nil {
		query = query.Where("espaco_id = ?", filter.EspacoID)
	}
	if filter.MoradorID != nil {
		query = query.Where("morador_id = ?", filter.MoradorID)
	}
	if filter.DataIni != nil {
		query = query.Where("data_reserva >= ?", filter.DataIni)
	}
	if filter.DataFim != nil {
		query = query.Where("data_reserva <= ?", filter.DataFim)
	}
	query = query.Order("data_reserva DESC")

	var reservas []models.EspacoReserva
	info, err := paginate(query, pg, &reservas)
	return reservas, info, err
}

// ReservaTaken reports whether a non-cancelled reservation already holds the
// (espaco, data) slot. Advisory only; CreateReserva is the authority.
func (r *Repository) ReservaTaken(ctx context.Context, espacoID uuid.UUID, data time.Time, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.EspacoReserva{}).
		Where("espaco_id = ? AND data_reserva = ?", espacoID, data).
		Where("status <> ?", models.ReservaCancelada)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Limit(1).Count(&count).Error
	return count > 0, err
}

// CountReservas counts scoped reservations in the inclusive date window with
// any of the given statuses.
func (r *Repository) CountReservas(ctx context.Context, scope access.Scope, from, to time.Time, statuses []models.ReservaStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EspacoReserva{}).Scopes(scope).
		Where("data_reserva >= ?", from)
	if !to.IsZero() {
		query = query.Where("data_reserva <= ?", to)
	}
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
