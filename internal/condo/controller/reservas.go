package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"go.uber.org/zap"
)

// ReservaService books shared spaces by whole day. The charged amount is
// frozen from the space's rate at booking time, and the (espaco, data)
// unique index settles concurrent bookings.
type ReservaService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

func NewReservaService(repo Repository, producer EventProducer, logger *zap.Logger) *ReservaService {
	return &ReservaService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("reserva_service"),
		now:      time.Now,
	}
}

// checkDataReserva enforces the booking window: no past dates, nothing past
// the end of the month one year out.
func (s *ReservaService) checkDataReserva(data time.Time) error {
	today := dateOnly(s.now())
	data = dateOnly(data)
	if data.Before(today) {
		return e.ErrRetroactiveDate
	}
	if data.After(reservationHorizon(today)) {
		return e.ErrTooFarInFuture
	}
	return nil
}

// CreateReserva books a space. Residents book for themselves only; managers
// may book on behalf of any resident.
func (s *ReservaService) CreateReserva(ctx context.Context, p access.Principal, reserva *models.EspacoReserva) (*models.EspacoReserva, error) {
	if !p.CanCreateReserva() {
		return nil, e.ErrForbidden
	}
	if p.IsMorador() && !p.Staff && !p.IsSindico() {
		if reserva.MoradorID == uuid.Nil {
			reserva.MoradorID = p.UserID
		}
		if reserva.MoradorID != p.UserID {
			return nil, e.ErrForbidden
		}
	}
	if reserva.EspacoID == uuid.Nil {
		return nil, fmt.Errorf("%w: espaco is required", e.ErrInvalidInput)
	}
	if reserva.MoradorID == uuid.Nil {
		return nil, fmt.Errorf("%w: morador is required", e.ErrInvalidInput)
	}
	if reserva.DataReserva.IsZero() {
		return nil, fmt.Errorf("%w: data_reserva is required", e.ErrInvalidInput)
	}
	if err := s.checkDataReserva(reserva.DataReserva); err != nil {
		return nil, err
	}

	espaco, err := s.repo.GetEspaco(ctx, reserva.EspacoID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: space not found", e.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	if !espaco.IsActive {
		return nil, fmt.Errorf("%w: space is inactive", e.ErrInvalidInput)
	}

	reserva.DataReserva = dateOnly(reserva.DataReserva)

	// Advisory pre-check for a friendly error. The unique index still
	// decides the race inside CreateReserva.
	taken, err := s.repo.ReservaTaken(ctx, reserva.EspacoID, reserva.DataReserva, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	if taken {
		return nil, e.ErrSlotTaken
	}

	reserva.ID = uuid.New()
	reserva.ValorCobrado = espaco.ValorAluguel
	if reserva.Status == "" {
		reserva.Status = models.ReservaConfirmada
	}
	reserva.CreatedByID = &p.UserID
	if err := s.repo.CreateReserva(ctx, reserva); err != nil {
		if errors.Is(err, e.ErrSlotTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	go func() {
		s.producer.Produce(events.ReservaCriada, reserva.ID, reserva)
	}()
	return reserva, nil
}

func (s *ReservaService) GetReserva(ctx context.Context, p access.Principal, id uuid.UUID) (*models.EspacoReserva, error) {
	reserva, err := s.repo.GetReserva(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if err := s.authorize(p, reserva); err != nil {
		return nil, err
	}
	return reserva, nil
}

// UpdateReserva reschedules or restates a booking. The date window checks
// run only when the stored date actually changes; re-submitting the same
// date passes untouched even if it is already in the past.
func (s *ReservaService) UpdateReserva(ctx context.Context, p access.Principal, update *models.EspacoReservaUpdate) (*models.EspacoReserva, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid reservation ID", e.ErrInvalidInput)
	}
	existing, err := s.repo.GetReserva(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if err := s.authorize(p, existing); err != nil {
		return nil, err
	}

	if update.DataReserva != nil {
		data := dateOnly(*update.DataReserva)
		if !data.Equal(dateOnly(existing.DataReserva)) {
			if err := s.checkDataReserva(data); err != nil {
				return nil, err
			}
			taken, err := s.repo.ReservaTaken(ctx, existing.EspacoID, data, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check availability: %w", err)
			}
			if taken {
				return nil, e.ErrSlotTaken
			}
		}
		update.DataReserva = &data
	}

	if err := s.repo.UpdateReserva(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrSlotTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return s.repo.GetReserva(ctx, update.ID)
}

// CancelReserva removes the booking, freeing its date for someone else.
func (s *ReservaService) CancelReserva(ctx context.Context, p access.Principal, id uuid.UUID) error {
	reserva, err := s.repo.GetReserva(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get reservation: %w", err)
	}
	if err := s.authorize(p, reserva); err != nil {
		return err
	}
	if err := s.repo.DeleteReserva(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	reserva.Status = models.ReservaCancelada
	go func() {
		s.producer.Produce(events.ReservaCancelada, reserva.ID, reserva)
	}()
	return nil
}

func (s *ReservaService) ListReservas(ctx context.Context, p access.Principal, filter db.ReservaFilter, pg db.Pagination) ([]models.EspacoReserva, db.PageInfo, error) {
	return s.repo.ListReservas(ctx, p.ScopeReservas(), filter, pg)
}

func (s *ReservaService) authorize(p access.Principal, r *models.EspacoReserva) error {
	if p.Staff || p.IsSindico() {
		return nil
	}
	if p.IsMorador() && r.MoradorID == p.UserID {
		return nil
	}
	return e.ErrForbidden
}
